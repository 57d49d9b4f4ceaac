// Package restaurant implements owner-only restaurant management and the
// viewer-scoped read paths on top of the visibility and filter packages.
package restaurant

import (
	"context"
	"sort"
	"time"

	"dishlist/backend/internal/cache"
	"dishlist/backend/internal/filter"
	"dishlist/backend/internal/models"
	"dishlist/backend/internal/repository"
	"dishlist/backend/internal/tagsync"
	"dishlist/backend/internal/visibility"
	"dishlist/backend/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

// Locations are the distinct places among the restaurants a viewer can see.
type Locations struct {
	Cities        []string `json:"cities"`
	Neighborhoods []string `json:"neighborhoods"`
}

// Service manages restaurants.
type Service struct {
	store *repository.Store
	tags  cache.TagCache
	log   *logrus.Logger
	now   func() time.Time
}

// NewService creates a Service. A nil tagCache disables caching.
func NewService(store *repository.Store, tagCache cache.TagCache, log *logrus.Logger) *Service {
	if tagCache == nil {
		tagCache = cache.Noop{}
	}
	return &Service{store: store, tags: tagCache, log: log, now: time.Now}
}

// Create stores a new restaurant owned by ownerID and attaches its tags.
func (s *Service) Create(ctx context.Context, ownerID uint, in Input) (*models.Restaurant, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var (
		created    *models.Restaurant
		newTagSeen bool
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		r := &models.Restaurant{OwnerID: ownerID}
		in.apply(r)
		if in.Evaluation != nil {
			r.Evaluation = in.Evaluation.toModel()
		}
		if err := tx.Restaurants.Create(ctx, r); err != nil {
			return err
		}

		var err error
		if newTagSeen, err = s.syncTags(ctx, tx, r, in.Tags); err != nil {
			return err
		}
		created, err = tx.Restaurants.FindByID(ctx, r.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create restaurant")
	}

	s.afterTagChange(ctx, newTagSeen)
	s.log.WithFields(logrus.Fields{"restaurant_id": created.ID, "owner_id": ownerID}).Info("Restaurant created")
	return created, nil
}

// Update replaces the fields and evaluation of restaurant id and, when
// in.Tags is not nil, synchronizes its tags. Only the owner may update.
func (s *Service) Update(ctx context.Context, viewerID, id uint, in Input) (*models.Restaurant, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var (
		updated    *models.Restaurant
		newTagSeen bool
	)
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		r, err := ownedRestaurant(ctx, tx, viewerID, id)
		if err != nil {
			return err
		}

		in.apply(r)
		if err := tx.Restaurants.UpdateFields(ctx, r); err != nil {
			return err
		}

		var eval *models.Evaluation
		if in.Evaluation != nil {
			eval = in.Evaluation.toModel()
		}
		if err := tx.Restaurants.ReplaceEvaluation(ctx, r.ID, eval); err != nil {
			return err
		}

		if in.Tags != nil {
			if newTagSeen, err = s.syncTags(ctx, tx, r, in.Tags); err != nil {
				return err
			}
		}
		updated, err = tx.Restaurants.FindByID(ctx, r.ID)
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to update restaurant")
	}

	s.afterTagChange(ctx, newTagSeen)
	s.log.WithFields(logrus.Fields{"restaurant_id": id, "owner_id": viewerID}).Info("Restaurant updated")
	return updated, nil
}

// Delete removes restaurant id and its evaluation. Its tags are detached and
// stay in the registry. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, viewerID, id uint) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		r, err := ownedRestaurant(ctx, tx, viewerID, id)
		if err != nil {
			return err
		}
		return tx.Restaurants.Delete(ctx, r)
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to delete restaurant")
	}

	s.log.WithFields(logrus.Fields{"restaurant_id": id, "owner_id": viewerID}).Info("Restaurant deleted")
	return nil
}

// Get returns restaurant id when the viewer may see it. An invisible
// restaurant is reported as not found.
func (s *Service) Get(ctx context.Context, viewerID, id uint) (*models.Restaurant, error) {
	var found *models.Restaurant
	err := s.store.ReadTransaction(ctx, func(tx *repository.Store) error {
		r, err := tx.Restaurants.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return ErrRestaurantNotFound
		}
		resolver, err := visibility.Snapshot(ctx, tx.Relations, viewerID)
		if err != nil {
			return err
		}
		if !resolver.CanView(r) {
			return ErrRestaurantNotFound
		}
		found = r
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load restaurant")
	}
	return found, nil
}

// List returns the restaurants matching cfg that the viewer may see.
func (s *Service) List(ctx context.Context, viewerID uint, cfg filter.Config) ([]models.Restaurant, error) {
	var result []models.Restaurant
	err := s.store.ReadTransaction(ctx, func(tx *repository.Store) error {
		resolver, err := visibility.Snapshot(ctx, tx.Relations, viewerID)
		if err != nil {
			return err
		}
		candidates, err := tx.Restaurants.ListAll(ctx)
		if err != nil {
			return err
		}
		result = filter.Apply(resolver, candidates, cfg)
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list restaurants")
	}

	s.log.WithFields(logrus.Fields{"viewer_id": viewerID, "count": len(result)}).Debug("Restaurants listed")
	return result, nil
}

// Stats summarizes the listing that List would return for cfg.
func (s *Service) Stats(ctx context.Context, viewerID uint, cfg filter.Config) (filter.Stats, error) {
	list, err := s.List(ctx, viewerID, cfg)
	if err != nil {
		return filter.Stats{}, err
	}
	return filter.Summarize(list, s.now()), nil
}

// Locations returns the sorted distinct cities and neighborhoods of the
// restaurants the viewer may see.
func (s *Service) Locations(ctx context.Context, viewerID uint) (*Locations, error) {
	list, err := s.List(ctx, viewerID, filter.DefaultConfig())
	if err != nil {
		return nil, err
	}

	cities := map[string]struct{}{}
	neighborhoods := map[string]struct{}{}
	for _, r := range list {
		cities[r.City] = struct{}{}
		if r.Neighborhood != "" {
			neighborhoods[r.Neighborhood] = struct{}{}
		}
	}
	return &Locations{Cities: sortedKeys(cities), Neighborhoods: sortedKeys(neighborhoods)}, nil
}

// Tags lists the tag registry, from the cache when it holds a copy.
func (s *Service) Tags(ctx context.Context) ([]models.Tag, error) {
	tags, ok, err := s.tags.Tags(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Tag cache read failed, falling back to database")
	}
	if ok && err == nil {
		return tags, nil
	}

	tags, err = s.store.Tags.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tags")
	}
	if err := s.tags.SetTags(ctx, tags); err != nil {
		s.log.WithError(err).Warn("Tag cache write failed")
	}
	return tags, nil
}

// syncTags makes the tags of r equal to desired and reports whether any tag
// was added to the registry.
func (s *Service) syncTags(ctx context.Context, tx *repository.Store, r *models.Restaurant, desired []string) (bool, error) {
	desired = tagsync.NormalizeAll(desired)
	registered, err := tx.Tags.Registered(ctx, desired)
	if err != nil {
		return false, err
	}

	plan := tagsync.Diff(r.TagNames(), desired, registered)
	if plan.Empty() {
		return false, nil
	}

	link := make([]*models.Tag, 0, len(plan.ToCreate)+len(plan.ToConnect))
	for _, name := range plan.ToCreate {
		tag, err := tx.Tags.Ensure(ctx, name)
		if err != nil {
			return false, err
		}
		link = append(link, tag)
	}
	existing, err := tx.Tags.FindByNames(ctx, plan.ToConnect)
	if err != nil {
		return false, err
	}
	link = append(link, existing...)
	if err := tx.Restaurants.ConnectTags(ctx, r, link); err != nil {
		return false, err
	}

	unlink, err := tx.Tags.FindByNames(ctx, plan.ToDisconnect)
	if err != nil {
		return false, err
	}
	if err := tx.Restaurants.DisconnectTags(ctx, r, unlink); err != nil {
		return false, err
	}

	s.log.WithFields(logrus.Fields{
		"restaurant_id": r.ID,
		"created":       plan.ToCreate,
		"connected":     plan.ToConnect,
		"disconnected":  plan.ToDisconnect,
	}).Debug("Tags synchronized")
	return len(plan.ToCreate) > 0, nil
}

func (s *Service) afterTagChange(ctx context.Context, registryChanged bool) {
	if !registryChanged {
		return
	}
	if err := s.tags.Invalidate(ctx); err != nil {
		s.log.WithError(err).Warn("Tag cache invalidation failed")
	}
}

func ownedRestaurant(ctx context.Context, tx *repository.Store, viewerID, id uint) (*models.Restaurant, error) {
	r, err := tx.Restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	if r.OwnerID != viewerID {
		return nil, ErrForbidden
	}
	return r, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
