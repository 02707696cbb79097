package gem

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hiddengems/gemstore/internal/model"
	"github.com/hiddengems/gemstore/pkg/persistence"
)

// Repo is the sole authority for existence, identity and field-level
// mutation of hidden gems. Construct one per owner; there is no package
// singleton.
//
// Every operation runs under a single lock, so read-modify-write updates
// are atomic with respect to concurrent creates.
type Repo struct {
	lock  sync.Mutex
	store persistence.Store[uint32, model.HiddenGem]
	log   *zap.SugaredLogger
}

func NewRepo(store persistence.Store[uint32, model.HiddenGem], logger *zap.SugaredLogger) *Repo {
	return &Repo{
		store: store,
		log:   logger,
	}
}

// Create mints a fresh id, stores a record with the given attributes and
// returns it. Ids are random and checked against live keys, so a returned
// id is never reissued while its record lives.
func (r *Repo) Create(attrs model.GemAttributes) (model.HiddenGem, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	id, err := r.nextID()
	if err != nil {
		return model.HiddenGem{}, err
	}

	record := model.HiddenGem{
		ID:            id,
		Name:          attrs.Name,
		Latitude:      attrs.Latitude,
		Longitude:     attrs.Longitude,
		GemType:       attrs.GemType,
		TimesVisited:  attrs.TimesVisited,
		UserCreated:   attrs.UserCreated,
		WebsiteLink:   attrs.WebsiteLink,
		Accessibility: attrs.Accessibility,
		GemImages:     attrs.GemImages,
		Reviews:       attrs.Reviews,
	}.Clone() // detach from the caller's slices

	if err := r.store.Save(id, record); err != nil {
		return model.HiddenGem{}, fmt.Errorf("failed to store hidden gem: %w", err)
	}

	gemsCreated.Inc()
	gemsLive.Inc()
	r.log.Debugw("created hidden gem", "id", id, "name", record.Name)

	return record.Clone(), nil
}

// GetByID returns the record for id. Absence is a valid outcome, not an
// error: the second return is false when no record lives under id.
func (r *Repo) GetByID(id uint32) (model.HiddenGem, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	record, err := r.store.Load(id)
	if err != nil {
		if !errors.Is(err, persistence.ErrKeyNotFound) {
			r.log.Warnw("failed to read from storage", "id", id, "error", err)
		}
		return model.HiddenGem{}, false
	}
	return record.Clone(), true
}

// ReadAll returns a snapshot of every live record keyed by id. Mutating the
// result does not touch the repository.
func (r *Repo) ReadAll() (map[uint32]model.HiddenGem, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	records, err := r.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read from storage: %w", err)
	}

	snapshot := make(map[uint32]model.HiddenGem, len(records))
	for id, record := range records {
		snapshot[id] = record.Clone()
	}
	return snapshot, nil
}

func (r *Repo) GetName(id uint32) (string, error) {
	record, err := r.load(id)
	if err != nil {
		return "", err
	}
	return record.Name, nil
}

func (r *Repo) UpdateName(id uint32, name string) (model.HiddenGem, error) {
	return r.update(id, "name", func(g *model.HiddenGem) {
		g.Name = name
	})
}

// GetCoordinates returns the latitude and longitude of the gem.
func (r *Repo) GetCoordinates(id uint32) (float64, float64, error) {
	record, err := r.load(id)
	if err != nil {
		return 0, 0, err
	}
	return record.Latitude, record.Longitude, nil
}

func (r *Repo) UpdateCoordinates(id uint32, latitude, longitude float64) (model.HiddenGem, error) {
	return r.update(id, "coordinates", func(g *model.HiddenGem) {
		g.Latitude = latitude
		g.Longitude = longitude
	})
}

func (r *Repo) GetGemType(id uint32) (string, error) {
	record, err := r.load(id)
	if err != nil {
		return "", err
	}
	return record.GemType, nil
}

func (r *Repo) UpdateGemType(id uint32, gemType string) (model.HiddenGem, error) {
	return r.update(id, "gemType", func(g *model.HiddenGem) {
		g.GemType = gemType
	})
}

func (r *Repo) GetTimesVisited(id uint32) (int, error) {
	record, err := r.load(id)
	if err != nil {
		return 0, err
	}
	return record.TimesVisited, nil
}

func (r *Repo) UpdateTimesVisited(id uint32, timesVisited int) (model.HiddenGem, error) {
	return r.update(id, "timesVisited", func(g *model.HiddenGem) {
		g.TimesVisited = timesVisited
	})
}

func (r *Repo) GetUserCreated(id uint32) (string, error) {
	record, err := r.load(id)
	if err != nil {
		return "", err
	}
	return record.UserCreated, nil
}

func (r *Repo) UpdateUserCreated(id uint32, userCreated string) (model.HiddenGem, error) {
	return r.update(id, "userCreated", func(g *model.HiddenGem) {
		g.UserCreated = userCreated
	})
}

func (r *Repo) GetWebsiteLink(id uint32) (string, error) {
	record, err := r.load(id)
	if err != nil {
		return "", err
	}
	return record.WebsiteLink, nil
}

func (r *Repo) UpdateWebsiteLink(id uint32, websiteLink string) (model.HiddenGem, error) {
	return r.update(id, "websiteLink", func(g *model.HiddenGem) {
		g.WebsiteLink = websiteLink
	})
}

func (r *Repo) GetAccessibility(id uint32) ([]bool, error) {
	record, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return record.Accessibility, nil
}

func (r *Repo) UpdateAccessibility(id uint32, accessibility []bool) (model.HiddenGem, error) {
	return r.update(id, "accessibility", func(g *model.HiddenGem) {
		g.Accessibility = accessibility
	})
}

func (r *Repo) GetGemImages(id uint32) ([]string, error) {
	record, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return record.GemImages, nil
}

func (r *Repo) UpdateGemImages(id uint32, gemImages []string) (model.HiddenGem, error) {
	return r.update(id, "gemImages", func(g *model.HiddenGem) {
		g.GemImages = gemImages
	})
}

func (r *Repo) GetReviews(id uint32) ([]model.Review, error) {
	record, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return record.Reviews, nil
}

func (r *Repo) UpdateReviews(id uint32, reviews []model.Review) (model.HiddenGem, error) {
	return r.update(id, "reviews", func(g *model.HiddenGem) {
		g.Reviews = reviews
	})
}

// Clear removes every record. Only meant for test isolation between cases;
// production callers should construct a fresh Repo instead.
func (r *Repo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	records, err := r.store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to read from storage: %w", err)
	}

	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}

	// subtract only this repo's records; the gauge spans all instances
	gemsLive.Sub(float64(len(records)))
	r.log.Debugw("cleared gem store", "removed", len(records))
	return nil
}

// load fetches a clone of the record under the repo lock, translating
// absence into a NotFoundError carrying the id.
func (r *Repo) load(id uint32) (model.HiddenGem, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.loadLocked(id)
}

func (r *Repo) loadLocked(id uint32) (model.HiddenGem, error) {
	record, err := r.store.Load(id)
	if err != nil {
		if errors.Is(err, persistence.ErrKeyNotFound) {
			gemsNotFound.Inc()
			return model.HiddenGem{}, &NotFoundError{ID: id}
		}
		return model.HiddenGem{}, fmt.Errorf("failed to read from storage: %w", err)
	}
	return record.Clone(), nil
}

// update overwrites exactly one field of a live record and returns the
// updated record. The load, mutate and save happen in one critical section.
func (r *Repo) update(id uint32, field string, mutate func(*model.HiddenGem)) (model.HiddenGem, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	record, err := r.loadLocked(id) // clone, so a failed save leaves storage untouched
	if err != nil {
		return model.HiddenGem{}, err
	}

	mutate(&record)
	record = record.Clone() // detach from the caller's slices

	if err := r.store.Save(id, record); err != nil {
		return model.HiddenGem{}, fmt.Errorf("failed to update entry with id %d: %w", id, err)
	}

	gemUpdates.WithLabelValues(field).Inc()
	r.log.Debugw("updated hidden gem", "id", id, "field", field)

	return record.Clone(), nil
}

// nextID draws random ids until one is free. Collisions among live records
// are vanishingly rare but checked anyway, so issued ids are unique for as
// long as their records live.
func (r *Repo) nextID() (uint32, error) {
	for {
		id := uuid.New().ID()
		_, err := r.store.Load(id)
		if errors.Is(err, persistence.ErrKeyNotFound) {
			return id, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to check id %d: %w", id, err)
		}
	}
}
