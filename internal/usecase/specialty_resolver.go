package usecase

import (
	"context"
	"errors"
	"fmt"

	"doctor-matching/internal/domain/entity"
	"doctor-matching/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCatalogUnavailable = errors.New("specialty catalog unavailable")

// SpecialtyResolver matches requested specialty names against the catalog.
// It only reads; the catalog is never modified.
type SpecialtyResolver interface {
	Resolve(ctx context.Context, names []string) (*entity.SpecialtyResolution, error)
}

type specialtyResolver struct {
	db            *gorm.DB
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
}

func NewSpecialtyResolver(db *gorm.DB, log *logrus.Logger, specialtyRepo repository.SpecialtyRepository) SpecialtyResolver {
	return &specialtyResolver{
		db:            db,
		log:           log,
		specialtyRepo: specialtyRepo,
	}
}

func (r *specialtyResolver) Resolve(ctx context.Context, names []string) (*entity.SpecialtyResolution, error) {
	distinct := distinctNames(names)
	resolution := &entity.SpecialtyResolution{
		Matched: make(map[string]int, len(distinct)),
		Missing: []string{},
	}
	if len(distinct) == 0 {
		return resolution, nil
	}

	// one round trip for the whole list
	specialties, err := r.specialtyRepo.FindByNames(ctx, r.db, distinct)
	if err != nil {
		r.log.Warnf("Failed to look up specialties %v: %+v", distinct, err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	for _, specialty := range specialties {
		resolution.Matched[specialty.Name] = specialty.ID
	}
	for _, name := range distinct {
		if _, ok := resolution.Matched[name]; !ok {
			resolution.Missing = append(resolution.Missing, name)
		}
	}

	return resolution, nil
}

// distinctNames keeps the first occurrence of each name, preserving order
func distinctNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}
	return distinct
}
