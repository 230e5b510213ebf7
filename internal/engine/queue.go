package engine

// WaitingQueue is the FIFO pool of session ids awaiting a match.
// Insertion order is significant and duplicates are never held.
type WaitingQueue struct {
	order   []string
	present map[string]struct{}
}

func NewWaitingQueue() *WaitingQueue {
	return &WaitingQueue{present: make(map[string]struct{})}
}

// Enqueue appends id unless it is already queued. It reports whether
// the id was actually inserted.
func (q *WaitingQueue) Enqueue(id string) bool {
	if _, ok := q.present[id]; ok {
		return false
	}
	q.order = append(q.order, id)
	q.present[id] = struct{}{}
	return true
}

// Remove drops id from the queue if present.
func (q *WaitingQueue) Remove(id string) bool {
	if _, ok := q.present[id]; !ok {
		return false
	}
	delete(q.present, id)
	for i, v := range q.order {
		if v == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
	return true
}

// PopFirstOther removes and returns the first queued id that is not
// requesterID. Self-pairing is forbidden even when the requester has a
// lingering entry of its own.
func (q *WaitingQueue) PopFirstOther(requesterID string) (string, bool) {
	for i, id := range q.order {
		if id == requesterID {
			continue
		}
		q.order = append(q.order[:i], q.order[i+1:]...)
		delete(q.present, id)
		return id, true
	}
	return "", false
}

func (q *WaitingQueue) Contains(id string) bool {
	_, ok := q.present[id]
	return ok
}

func (q *WaitingQueue) Len() int {
	return len(q.order)
}
