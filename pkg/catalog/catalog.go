package catalog

import "context"

type SidebarLink struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

type ContentItem struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Summary  string `json:"summary"`
}

// Catalog is what the landing page renders: navigation links and content cards.
type Catalog struct {
	Links []SidebarLink `json:"links"`
	Items []ContentItem `json:"items"`
}

// Source provides catalog data. Implementations must honor ctx cancellation.
type Source interface {
	Sidebar(ctx context.Context) ([]SidebarLink, error)
	Content(ctx context.Context) ([]ContentItem, error)
}
