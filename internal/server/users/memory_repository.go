package users

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryRepository keeps users in process memory. It enforces the same
// unique username and email constraint as the Mongo indexes.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]userDocument
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{docs: make(map[primitive.ObjectID]userDocument)}
}

func (r *InMemoryRepository) Create(ctx context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := *newUserDocument(u)
	if r.conflictLocked(doc.Username, doc.Email, primitive.NilObjectID) {
		return nil, fmt.Errorf("%w: username or email is already registered", common.ErrAlreadyExists)
	}
	doc.ID = primitive.NewObjectID()
	r.docs[doc.ID] = doc
	r.order = append(r.order, doc.ID)
	return toUser(&doc), nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[oid]
	if !ok {
		return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
	}
	return toUser(&doc), nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if doc := r.docs[id]; doc.Email == email {
			return toUser(&doc), nil
		}
	}
	return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
}

func (r *InMemoryRepository) FindByName(ctx context.Context, firstName, lastName string) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0)
	for _, id := range r.order {
		doc := r.docs[id]
		if hasPrefixFold(doc.FirstName, firstName) && hasPrefixFold(doc.LastName, lastName) {
			out = append(out, *toUser(&doc))
		}
	}
	return out, nil
}

func (r *InMemoryRepository) FindByUsernamePrefix(ctx context.Context, prefix string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []userDocument
	for _, id := range r.order {
		if doc := r.docs[id]; hasPrefixFold(doc.Username, prefix) {
			matches = append(matches, doc)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Username < matches[j].Username })
	return toUser(&matches[0]), nil
}

func (r *InMemoryRepository) ExistsUsername(ctx context.Context, username, exceptID string) (bool, error) {
	return r.exists(func(d userDocument) bool { return d.Username == username }, exceptID)
}

func (r *InMemoryRepository) ExistsEmail(ctx context.Context, email, exceptID string) (bool, error) {
	return r.exists(func(d userDocument) bool { return d.Email == email }, exceptID)
}

func (r *InMemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.order))
	for _, id := range r.order {
		doc := r.docs[id]
		out = append(out, *toUser(&doc))
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, u *User) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: update failed", common.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[oid]
	if !ok {
		return nil, fmt.Errorf("%w: update failed", common.ErrNotFound)
	}
	if r.conflictLocked(u.Username, u.Email, oid) {
		return nil, fmt.Errorf("%w: another user has this username or email", common.ErrAlreadyExists)
	}

	doc.FirstName = u.FirstName
	doc.LastName = u.LastName
	doc.Username = u.Username
	doc.Email = u.Email
	doc.Age = u.Age
	doc.City = u.City
	doc.State = u.State
	doc.Zip = u.Zip
	doc.ExperienceLevel = u.ExperienceLevel
	doc.Image = u.Image
	r.docs[oid] = doc
	return toUser(&doc), nil
}

// EnsureIndexes is a no-op: uniqueness is checked on every write.
func (r *InMemoryRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) exists(match func(userDocument) bool, exceptID string) (bool, error) {
	var except primitive.ObjectID
	if exceptID != "" {
		oid, err := primitive.ObjectIDFromHex(exceptID)
		if err != nil {
			return false, fmt.Errorf("%w: invalid id %q", common.ErrValidation, exceptID)
		}
		except = oid
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, doc := range r.docs {
		if id != except && match(doc) {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) conflictLocked(username, email string, except primitive.ObjectID) bool {
	for id, doc := range r.docs {
		if id == except {
			continue
		}
		if doc.Username == username || doc.Email == email {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
