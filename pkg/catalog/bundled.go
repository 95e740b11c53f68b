package catalog

import "context"

// BundledSource serves the dataset shipped with the application. It never fails.
type BundledSource struct{}

func (BundledSource) Sidebar(ctx context.Context) ([]SidebarLink, error) {
	return FallbackLinks(), nil
}

func (BundledSource) Content(ctx context.Context) ([]ContentItem, error) {
	return FallbackItems(), nil
}

func FallbackLinks() []SidebarLink {
	return []SidebarLink{
		{Id: "overview", Label: "Conteúdos"},
		{Id: "plans", Label: "Planos"},
		{Id: "schedule", Label: "Cronograma"},
		{Id: "workshops", Label: "WorkShops"},
	}
}

func FallbackItems() []ContentItem {
	return []ContentItem{
		{
			Id:       "strategic-mentoring",
			Title:    "Mentorias Estratégicas",
			Category: "Conteúdos",
			Image:    "https://personalisnadiasantos.com.br/wp-content/uploads/2024/02/Design-sem-nome-3-1024x819.jpg",
			Summary:  "Potencialize a tomada de decisão com suporte de especialistas do mercado.",
		},
		{
			Id:       "innovation-labs",
			Title:    "Laboratórios de Inovação",
			Category: "Conteúdos",
			Image:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=800&q=80",
			Summary:  "Espaços colaborativos para prototipar soluções e acelerar resultados.",
		},
		{
			Id:       "leadership-programs",
			Title:    "Programas de Liderança",
			Category: "Conteúdos",
			Image:    "https://wallpapers.com/images/hd/leadership-pictures-472u004hpq5vbxhr.jpg",
			Summary:  "Treinamentos intensivos para desenvolvimento de líderes de alta performance.",
		},
		{
			Id:       "business-clinics",
			Title:    "Clínicas de Negócios",
			Category: "Conteúdos",
			Image:    "https://images.unsplash.com/photo-1557426272-fc759fdf7a8d?auto=format&fit=crop&w=800&q=80",
			Summary:  "Diagnósticos rápidos e planos de ação personalizados para MPEs.",
		},
		{
			Id:       "digital-capacitation",
			Title:    "Capacitação Digital",
			Category: "Conteúdos",
			Image:    "https://images.unsplash.com/photo-1520607162513-77705c0f0d4a?auto=format&fit=crop&w=800&q=80",
			Summary:  "Workshops e cursos para elevar a maturidade digital do seu negócio.",
		},
		{
			Id:       "collaboration-hubs",
			Title:    "Hubs de Colaboração",
			Category: "Conteúdos",
			Image:    "https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&w=800&q=80",
			Summary:  "Comunidades temáticas para conexão entre empresas, mentores e investidores.",
		},
	}
}
