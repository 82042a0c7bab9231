package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Catalog неизменяемый справочник услуг салона
// Загружается один раз при старте процесса
type Catalog struct {
	services []domain.Service
	byName   map[string]int
}

// Default встроенный каталог, используется если в конфиге услуги не заданы
func Default() *Catalog {
	c, _ := New([]domain.Service{
		{
			ID:              "hair-styling",
			Name:            "Hair Styling",
			DisplayName:     "Coiffure & Style",
			Description:     "Coupe et coiffure professionnelle pour tous types de cheveux",
			DurationMinutes: 60,
			Price:           50,
		},
		{
			ID:              "hair-coloring",
			Name:            "Hair Coloring",
			DisplayName:     "Coloration Cheveux",
			Description:     "Coloration complète avec des produits premium",
			DurationMinutes: 90,
			Price:           85,
		},
		{
			ID:              "spa-massage",
			Name:            "Spa Massage",
			DisplayName:     "Massage Spa",
			Description:     "Massage relaxant du corps entier",
			DurationMinutes: 120,
			Price:           120,
		},
	})
	return c
}

// New валидирует и строит каталог
func New(services []domain.Service) (*Catalog, error) {
	c := &Catalog{
		services: make([]domain.Service, 0, len(services)),
		byName:   make(map[string]int, len(services)*2),
	}

	for _, s := range services {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("%w: empty service name", ErrInvalidCatalog)
		}
		if s.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %q has non-positive duration", ErrInvalidCatalog, s.Name)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("%w: service %q has negative price", ErrInvalidCatalog, s.Name)
		}
		if s.DisplayName == "" {
			s.DisplayName = s.Name
		}
		if s.ID == "" {
			s.ID = slug(s.Name)
		}

		idx := len(c.services)
		for _, key := range []string{s.Name, s.DisplayName} {
			if other, ok := c.byName[key]; ok && other != idx {
				return nil, fmt.Errorf("%w: duplicate service name %q", ErrInvalidCatalog, key)
			}
			c.byName[key] = idx
		}
		c.services = append(c.services, s)
	}

	return c, nil
}

// All возвращает копию списка услуг в порядке объявления
func (c *Catalog) All() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Lookup ищет услугу по каноническому или отображаемому имени
// Ссылка из бронирования "слабая": отсутствие услуги - нормальная ситуация
func (c *Catalog) Lookup(name string) (domain.Service, bool) {
	idx, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return domain.Service{}, false
	}
	return c.services[idx], true
}

// PriceOf цена услуги или 0, если услуги нет в каталоге
func (c *Catalog) PriceOf(name string) float64 {
	s, ok := c.Lookup(name)
	if !ok {
		return 0
	}
	return s.Price
}

// DurationOf длительность услуги из каталога
func (c *Catalog) DurationOf(name string) (int, bool) {
	s, ok := c.Lookup(name)
	if !ok {
		return 0, false
	}
	return s.DurationMinutes, true
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
