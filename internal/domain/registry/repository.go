package registry

import "context"

// InsurerRepository provides access to insurers
type InsurerRepository interface {
	FindByID(ctx context.Context, id uint) (*Insurer, error)
	FindAll(ctx context.Context) ([]Insurer, error)
	Save(ctx context.Context, insurer *Insurer) error
	Delete(ctx context.Context, id uint) error
}

// AgencyRepository provides access to insurer agencies
type AgencyRepository interface {
	FindByID(ctx context.Context, id uint) (*Agency, error)
	FindAll(ctx context.Context, insurerID uint) ([]Agency, error)
	Save(ctx context.Context, agency *Agency) error
	Delete(ctx context.Context, id uint) error
}

// BrandRepository provides access to vehicle brands
type BrandRepository interface {
	FindByID(ctx context.Context, id uint) (*Brand, error)
	FindAll(ctx context.Context) ([]Brand, error)
	Save(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uint) error
}

// GarageRepository provides access to garages
type GarageRepository interface {
	FindByID(ctx context.Context, id uint) (*Garage, error)
	FindAll(ctx context.Context) ([]Garage, error)
	Save(ctx context.Context, garage *Garage) error
	Delete(ctx context.Context, id uint) error
}

// ReferenceKind names a reference entity type for usage counting.
type ReferenceKind string

const (
	ReferenceInsurer        ReferenceKind = "insurer"
	ReferenceAgency         ReferenceKind = "agency"
	ReferenceBrand          ReferenceKind = "brand"
	ReferenceGarage         ReferenceKind = "garage"
	ReferenceAdverseInsurer ReferenceKind = "adverse_insurer"
)

// UsageCounter reports how many missions still reference an entity. Deletion
// of a referenced entity must be refused with a conflict.
type UsageCounter interface {
	CountReferences(ctx context.Context, kind ReferenceKind, id uint) (int64, error)
}
