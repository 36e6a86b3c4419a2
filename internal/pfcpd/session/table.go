// Package session holds the pfcpd example node's in-memory PFCP session
// table: the rule sets installed by Session Establishment/Modification
// and the local F-TEID pool used to satisfy CH-flagged PDRs.
package session

import (
	"sync"
	"time"

	"github.com/your-org/pfcp/ie"
)

// Session is one PFCP session's installed rule set, keyed by the F-SEID
// the UPF allocated for it.
type Session struct {
	LocalSEID   uint64
	RemoteSEID  uint64
	RemoteAddr  string
	PDRs        map[uint16]ie.CreatePDR
	FARs        map[uint32]ie.CreateFAR
	QERs        map[uint32]ie.CreateQER
	URRs        map[uint32]ie.CreateURR
	CreatedAt   time.Time
	LastUpdated time.Time
}

// Table is a mutex-guarded map of active sessions, modeled on the
// teacher's UPFContext session map but keyed by the codec's own F-SEID
// type instead of a raw header field.
type Table struct {
	mu       sync.RWMutex
	sessions map[uint64]*Session
	teids    *teidPool
	nextSEID uint64
}

// NewTable creates an empty session table.
func NewTable() *Table {
	return &Table{
		sessions: make(map[uint64]*Session),
		teids:    newTEIDPool(),
		nextSEID: 1,
	}
}

// AllocateSEID hands out the next local F-SEID this node will use to
// key a newly established session, independent of the TEID pool.
func (t *Table) AllocateSEID() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	seid := t.nextSEID
	t.nextSEID++
	return seid
}

// Create installs a new session for localSEID, replacing any existing
// entry under that key.
func (t *Table) Create(localSEID, remoteSEID uint64, remoteAddr string) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	s := &Session{
		LocalSEID:  localSEID,
		RemoteSEID: remoteSEID,
		RemoteAddr: remoteAddr,
		PDRs:       make(map[uint16]ie.CreatePDR),
		FARs:       make(map[uint32]ie.CreateFAR),
		QERs:       make(map[uint32]ie.CreateQER),
		URRs:       make(map[uint32]ie.CreateURR),
		CreatedAt:  now,
		LastUpdated: now,
	}
	t.sessions[localSEID] = s
	return s
}

// Get retrieves a session by local F-SEID.
func (t *Table) Get(localSEID uint64) (*Session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[localSEID]
	return s, ok
}

// Delete removes a session and releases any F-TEIDs it held.
func (t *Table) Delete(localSEID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[localSEID]; ok {
		for _, pdr := range s.PDRs {
			if pdr.PDI.LocalFTEID != nil {
				t.teids.release(pdr.PDI.LocalFTEID.TEID)
			}
		}
		delete(t.sessions, localSEID)
	}
}

// All returns every active session, for the debug HTTP endpoint.
func (t *Table) All() []*Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*Session, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s)
	}
	return out
}

// Count returns the number of active sessions.
func (t *Table) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}

// InstallPDR records a PDR against an already-created session, touching
// LastUpdated.
func (s *Session) InstallPDR(p ie.CreatePDR) {
	s.PDRs[p.PDRID.Value] = p
	s.LastUpdated = time.Now()
}

// InstallFAR records a FAR against an already-created session.
func (s *Session) InstallFAR(f ie.CreateFAR) {
	s.FARs[f.FARID.Value] = f
	s.LastUpdated = time.Now()
}

// InstallQER records a QER against an already-created session.
func (s *Session) InstallQER(q ie.CreateQER) {
	s.QERs[q.QERID.Value] = q
	s.LastUpdated = time.Now()
}

// InstallURR records a URR against an already-created session.
func (s *Session) InstallURR(u ie.CreateURR) {
	s.URRs[u.URRID.Value] = u
	s.LastUpdated = time.Now()
}

// AllocateTEID hands out the next free local TEID, skipping zero.
func (t *Table) AllocateTEID() uint32 {
	return t.teids.allocate()
}

// teidPool is a straight copy of the teacher's UPFContext.TEIDPool
// allocation strategy (linear scan forward from the last cursor,
// wrapping past zero), adapted to live alongside the session table
// instead of the session map.
type teidPool struct {
	mu   sync.Mutex
	next uint32
	used map[uint32]bool
}

func newTEIDPool() *teidPool {
	return &teidPool{next: 1, used: make(map[uint32]bool)}
}

func (p *teidPool) allocate() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.used[p.next] {
		p.next++
		if p.next == 0 {
			p.next = 1
		}
	}
	teid := p.next
	p.used[teid] = true
	p.next++
	return teid
}

func (p *teidPool) release(teid uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.used, teid)
}
