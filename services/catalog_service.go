package services

import (
	"backend/entity"
	"backend/repository"
	"backend/utils"
)

// CatalogService is the read side of the catalog: restaurants, menus and the
// human-text-to-identifier resolution the chat bot and menu routes rely on.
type CatalogService struct {
	Restaurants *repository.RestaurantRepository
	Menus       *repository.MenuRepository
}

func NewCatalogService(rr *repository.RestaurantRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{Restaurants: rr, Menus: mr}
}

func (s *CatalogService) List() ([]entity.Restaurant, error) {
	return s.Restaurants.FindAll()
}

func (s *CatalogService) Get(id string) (*entity.Restaurant, error) {
	return s.Restaurants.FindByID(id)
}

// Menu returns the items of one restaurant. A fetch failure is an error; a
// restaurant with no items is an empty slice. Callers must not conflate the two.
func (s *CatalogService) Menu(restaurantID string) ([]entity.MenuItem, error) {
	return s.Menus.FindByRestaurant(restaurantID)
}

func (s *CatalogService) MenuItem(restaurantID, itemID string) (*entity.MenuItem, error) {
	return s.Menus.FindByID(restaurantID, itemID)
}

// ResolveIdentifier maps human text ("Golden Bakery") to a restaurant id
// ("golden-bakery"). Exact id match wins, then a slug match against known ids
// and names. Unresolvable input is returned unchanged: the fallback is
// best-effort, not a guarantee the id exists.
func (s *CatalogService) ResolveIdentifier(text string) string {
	restaurants, err := s.Restaurants.FindAll()
	if err != nil {
		return text
	}

	for _, r := range restaurants {
		if r.ID == text {
			return text
		}
	}

	slug := utils.Slugify(text)
	for _, r := range restaurants {
		if r.ID == slug || utils.Slugify(r.Name) == slug {
			return r.ID
		}
	}
	return text
}
