package catalog

import (
	"context"
	"sync"
)

// SourceStub is an in-memory Source for tests. Set the error fields to make calls fail.
type SourceStub struct {
	mu         sync.RWMutex
	links      []SidebarLink
	items      []ContentItem
	SidebarErr error
	ContentErr error
	calls      int
}

func NewSourceStub(links []SidebarLink, items []ContentItem) *SourceStub {
	return &SourceStub{links: links, items: items}
}

func (s *SourceStub) Sidebar(ctx context.Context) ([]SidebarLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.SidebarErr != nil {
		return nil, s.SidebarErr
	}
	return append([]SidebarLink(nil), s.links...), nil
}

func (s *SourceStub) Content(ctx context.Context) ([]ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.ContentErr != nil {
		return nil, s.ContentErr
	}
	return append([]ContentItem(nil), s.items...), nil
}

func (s *SourceStub) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

func (s *SourceStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = nil
	s.items = nil
	s.SidebarErr = nil
	s.ContentErr = nil
	s.calls = 0
}
