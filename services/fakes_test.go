package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"petcare-catalog/models"
	"petcare-catalog/repository"
)

// In-memory repository fakes backing the services-layer tests.

type fakeCategoryRepo struct {
	categories []models.ServiceCategory
	typeCounts map[uuid.UUID]int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{typeCounts: map[uuid.UUID]int64{}}
}

func (r *fakeCategoryRepo) add(name, slug string) models.ServiceCategory {
	category := models.ServiceCategory{
		ID:   uuid.New(),
		Name: name,
		Slug: slug,
	}
	r.categories = append(r.categories, category)
	return category
}

func (r *fakeCategoryRepo) FindAll() ([]models.ServiceCategory, error) {
	out := append([]models.ServiceCategory(nil), r.categories...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) FindAllWithTypes() ([]models.ServiceCategory, error) {
	return r.FindAll()
}

func (r *fakeCategoryRepo) FindByID(id uuid.UUID) (*models.ServiceCategory, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindBySlug(slug string) (*models.ServiceCategory, error) {
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			return &r.categories[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) NameTaken(name string, excludeID *uuid.UUID) (bool, error) {
	for i := range r.categories {
		if r.categories[i].Name == name && (excludeID == nil || r.categories[i].ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) SlugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	for i := range r.categories {
		if r.categories[i].Slug == slug && (excludeID == nil || r.categories[i].ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Create(category *models.ServiceCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories = append(r.categories, *category)
	return nil
}

func (r *fakeCategoryRepo) Update(category *models.ServiceCategory) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(id uuid.UUID) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) CountTypes(categoryID uuid.UUID) (int64, error) {
	return r.typeCounts[categoryID], nil
}

type fakeTypeRepo struct {
	types         []models.ServiceType
	serviceCounts map[uuid.UUID]int64
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{serviceCounts: map[uuid.UUID]int64{}}
}

func (r *fakeTypeRepo) add(name, slug string, categoryID uuid.UUID, status models.TypeStatus) models.ServiceType {
	serviceType := models.ServiceType{
		ID:         uuid.New(),
		Name:       name,
		Slug:       slug,
		CategoryID: categoryID,
		Status:     status,
	}
	r.types = append(r.types, serviceType)
	return serviceType
}

func (r *fakeTypeRepo) FindActive(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	var out []models.ServiceType
	for _, t := range r.types {
		if t.Status != models.TypeStatusActive {
			continue
		}
		if categoryID != nil && t.CategoryID != *categoryID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTypeRepo) FindAll(categoryID *uuid.UUID) ([]models.ServiceType, error) {
	var out []models.ServiceType
	for _, t := range r.types {
		if categoryID != nil && t.CategoryID != *categoryID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTypeRepo) FindPending() ([]models.ServiceType, error) {
	var out []models.ServiceType
	for _, t := range r.types {
		if t.Status == models.TypeStatusPending {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTypeRepo) FindByID(id uuid.UUID) (*models.ServiceType, error) {
	for i := range r.types {
		if r.types[i].ID == id {
			copied := r.types[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTypeRepo) FindBySlug(slug string) (*models.ServiceType, error) {
	for i := range r.types {
		if r.types[i].Slug == slug {
			copied := r.types[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTypeRepo) SlugTaken(slug string, excludeID *uuid.UUID) (bool, error) {
	for _, t := range r.types {
		if t.Slug == slug && (excludeID == nil || t.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTypeRepo) NameTaken(name string, categoryID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	for _, t := range r.types {
		if t.Name == name && t.CategoryID == categoryID && (excludeID == nil || t.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTypeRepo) Create(serviceType *models.ServiceType) error {
	if serviceType.ID == uuid.Nil {
		serviceType.ID = uuid.New()
	}
	r.types = append(r.types, *serviceType)
	return nil
}

func (r *fakeTypeRepo) Update(serviceType *models.ServiceType) error {
	for i := range r.types {
		if r.types[i].ID == serviceType.ID {
			r.types[i] = *serviceType
			return nil
		}
	}
	return nil
}

func (r *fakeTypeRepo) Delete(id uuid.UUID) error {
	for i := range r.types {
		if r.types[i].ID == id {
			r.types = append(r.types[:i], r.types[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeTypeRepo) CountServices(typeID uuid.UUID) (int64, error) {
	return r.serviceCounts[typeID], nil
}

func (r *fakeTypeRepo) DeleteRejectedBefore(cutoff time.Time) (int64, error) {
	var kept []models.ServiceType
	var purged int64
	for _, t := range r.types {
		if t.Status == models.TypeStatusRejected && t.UpdatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, t)
	}
	r.types = kept
	return purged, nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*models.Service
	order    []uuid.UUID
	clock    time.Time
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services: map[uuid.UUID]*models.Service{},
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeServiceRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeServiceRepo) List(filter repository.ServiceFilter) ([]models.Service, int64, error) {
	var matched []models.Service
	// order holds insertion order; newest first mirrors the real query.
	for i := len(r.order) - 1; i >= 0; i-- {
		s := r.services[r.order[i]]
		if filter.OrganizationID != nil && s.OrganizationID != *filter.OrganizationID {
			continue
		}
		if filter.BranchID != nil && (s.BranchID == nil || *s.BranchID != *filter.BranchID) {
			continue
		}
		if filter.TypeID != nil && s.TypeID != *filter.TypeID {
			continue
		}
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		matched = append(matched, *s)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	copied.Variations = append([]models.ServiceVariation(nil), s.Variations...)
	return &copied, nil
}

func (r *fakeServiceRepo) Create(service *models.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	service.CreatedAt = r.tick()
	for i := range service.Variations {
		if service.Variations[i].ID == uuid.Nil {
			service.Variations[i].ID = uuid.New()
		}
		service.Variations[i].ServiceID = service.ID
	}
	stored := *service
	stored.Variations = append([]models.ServiceVariation(nil), service.Variations...)
	r.services[service.ID] = &stored
	r.order = append(r.order, service.ID)
	return nil
}

func (r *fakeServiceRepo) ApplyUpdate(id uuid.UUID, update repository.ServiceUpdate) error {
	s, ok := r.services[id]
	if !ok {
		return nil
	}

	deleted := map[uuid.UUID]bool{}
	for _, vid := range update.DeleteVariationIDs {
		deleted[vid] = true
	}
	var kept []models.ServiceVariation
	for _, v := range s.Variations {
		if !deleted[v.ID] {
			kept = append(kept, v)
		}
	}
	s.Variations = kept

	for _, patch := range update.VariationPatches {
		for i := range s.Variations {
			if s.Variations[i].ID != patch.ID {
				continue
			}
			if name, ok := patch.Fields["name"]; ok {
				s.Variations[i].Name = name.(string)
			}
			if price, ok := patch.Fields["price"]; ok {
				s.Variations[i].Price = price.(decimal.Decimal)
			}
			if isActive, ok := patch.Fields["is_active"]; ok {
				s.Variations[i].IsActive = isActive.(bool)
			}
		}
	}

	for _, v := range update.NewVariations {
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		v.ServiceID = id
		v.CreatedAt = r.tick()
		s.Variations = append(s.Variations, v)
	}

	for field, value := range update.Fields {
		switch field {
		case "branch_id":
			branchID := value.(uuid.UUID)
			s.BranchID = &branchID
		case "name":
			s.Name = value.(string)
		case "description":
			s.Description = value.(string)
		case "type_id":
			s.TypeID = value.(uuid.UUID)
		case "image_id":
			imageID := value.(uuid.UUID)
			s.ImageID = &imageID
		case "is_active":
			s.IsActive = value.(bool)
		case "price":
			if value == nil {
				s.Price = decimal.NullDecimal{}
			} else {
				s.Price = decimal.NullDecimal{Decimal: value.(decimal.Decimal), Valid: true}
			}
		}
	}
	return nil
}

func (r *fakeServiceRepo) Delete(id uuid.UUID) error {
	delete(r.services, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
