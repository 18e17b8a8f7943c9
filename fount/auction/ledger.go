package auction

// Ledger maps item ids to live auction records. Map membership is the
// authoritative "auction exists" signal; absent ids read as zero Records.
//
// The ledger does no locking of its own: every access happens under the
// engine's mutex, which is what serializes operations against it.
type Ledger struct {
	records map[int64]Record
	active  int
}

func NewLedger() *Ledger {
	return &Ledger{records: make(map[int64]Record)}
}

// Get returns the record for id and whether it exists.
func (l *Ledger) Get(id int64) (Record, bool) {
	rec, ok := l.records[id]
	return rec, ok
}

// Put inserts or replaces the record for id.
func (l *Ledger) Put(id int64, rec Record) {
	if _, ok := l.records[id]; !ok {
		l.active++
	}
	l.records[id] = rec
}

// Delete removes the record for id. The same id can only be auctioned again
// through a fresh CreateAuction.
func (l *Ledger) Delete(id int64) {
	if _, ok := l.records[id]; ok {
		l.active--
		delete(l.records, id)
	}
}

// Active returns the number of live auctions. Always equals the number of
// stored records.
func (l *Ledger) Active() int { return l.active }

// ids returns a snapshot of all live item ids.
func (l *Ledger) ids() []int64 {
	out := make([]int64, 0, len(l.records))
	for id := range l.records {
		out = append(out, id)
	}
	return out
}
