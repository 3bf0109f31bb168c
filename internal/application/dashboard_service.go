package application

import (
	"context"
	"log"
	"sync"

	"github.com/egemed/clinic_backend/internal/domain"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Blogs          int `json:"blogs"`
	Specialties    int `json:"specialties"`
	GalleryPhotos  int `json:"gallery_photos"`
	FAQs           int `json:"faqs"`
	UnreadMessages int `json:"unread_messages"`
}

type DashboardService struct {
	blogs       domain.BlogRepository
	specialties domain.SpecialtyRepository
	gallery     domain.GalleryRepository
	faqs        domain.FAQRepository
	contacts    domain.ContactRepository
}

func NewDashboardService(
	blogs domain.BlogRepository,
	specialties domain.SpecialtyRepository,
	gallery domain.GalleryRepository,
	faqs domain.FAQRepository,
	contacts domain.ContactRepository,
) *DashboardService {
	return &DashboardService{
		blogs:       blogs,
		specialties: specialties,
		gallery:     gallery,
		faqs:        faqs,
		contacts:    contacts,
	}
}

// Stats fans out the five independent counts concurrently. A failed count
// degrades to zero; the dashboard renders with whatever arrived.
func (s *DashboardService) Stats(ctx context.Context, locale domain.Locale) DashboardStats {
	var stats DashboardStats
	var wg sync.WaitGroup

	one := domain.ListQuery{Limit: 1}

	count := func(name string, fetch func() (int, error), dst *int) {
		defer wg.Done()
		total, err := fetch()
		if err != nil {
			log.Printf("dashboard %s count failed: %v", name, err)
			return
		}
		*dst = total
	}

	wg.Add(5)
	go count("blogs", func() (int, error) {
		list, err := s.blogs.List(ctx, locale, one)
		return list.Total, err
	}, &stats.Blogs)
	go count("specialties", func() (int, error) {
		list, err := s.specialties.List(ctx, locale, one)
		return list.Total, err
	}, &stats.Specialties)
	go count("gallery", func() (int, error) {
		list, err := s.gallery.List(ctx, one)
		return list.Total, err
	}, &stats.GalleryPhotos)
	go count("faqs", func() (int, error) {
		list, err := s.faqs.List(ctx, locale, one)
		return list.Total, err
	}, &stats.FAQs)
	go count("messages", func() (int, error) {
		list, err := s.contacts.List(ctx, domain.ListQuery{Limit: 200})
		unread := 0
		for _, m := range list.Data {
			if !m.Read {
				unread++
			}
		}
		return unread, err
	}, &stats.UnreadMessages)

	wg.Wait()
	return stats
}
