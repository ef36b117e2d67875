package state

import "spaces-wallet-tui/rpc"

// SpaceData is the on-chain state of an opened space.
type SpaceData struct {
	Outpoint string
	Covenant rpc.Covenant
}

// Spaces caches space lookups by label. An absent label has not been fetched, a
// label stored with nil data is known to be unopened. The zero value is ready to use.
type Spaces struct {
	data map[string]*SpaceData
}

// Set records the answer of a space lookup. out may be nil for an unopened space.
func (s *Spaces) Set(label string, out *rpc.FullSpaceOut) {
	if s.data == nil {
		s.data = make(map[string]*SpaceData)
	}
	if out == nil || out.SpaceOut.Space == nil {
		s.data[label] = nil
		return
	}
	s.data[label] = &SpaceData{
		Outpoint: out.Outpoint(),
		Covenant: out.SpaceOut.Space.Covenant,
	}
}

// Get returns the cached entry and whether the label was ever fetched.
func (s *Spaces) Get(label string) (*SpaceData, bool) {
	if s == nil {
		return nil, false
	}
	d, ok := s.data[label]
	return d, ok
}

// Covenant returns nil with known=true for an unopened space.
func (s *Spaces) Covenant(label string) (cov *rpc.Covenant, known bool) {
	d, ok := s.Get(label)
	if !ok || d == nil {
		return nil, ok
	}
	c := d.Covenant
	return &c, true
}

func (s *Spaces) Outpoint(label string) (string, bool) {
	d, _ := s.Get(label)
	if d == nil {
		return "", false
	}
	return d.Outpoint, true
}

func (s *Spaces) Contains(label string) bool {
	_, ok := s.Get(label)
	return ok
}
