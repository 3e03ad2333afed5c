package users

import (
	"fmt"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// appendReview and appendBooking stand in for the review and booking
// subsystems, which write to the embedded arrays directly.
func (r *InMemoryRepository) appendReview(userID string, rv Review) error {
	return r.mutate(userID, func(d *userDocument) {
		rid, err := primitive.ObjectIDFromHex(rv.ID)
		if err != nil {
			rid = primitive.NewObjectID()
		}
		d.Reviews = append(d.Reviews, reviewDocument{
			ID:         rid,
			ReviewerID: rv.ReviewerID,
			RevieweeID: rv.RevieweeID,
			Rating:     rv.Rating,
			Comment:    rv.Comment,
		})
	})
}

func (r *InMemoryRepository) appendBooking(userID string, b Booking) error {
	return r.mutate(userID, func(d *userDocument) {
		bid, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			bid = primitive.NewObjectID()
		}
		d.History = append(d.History, bookingDocument{
			ID:        bid,
			CourtID:   b.CourtID,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	})
}

func (r *InMemoryRepository) mutate(userID string, fn func(*userDocument)) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: no user found", common.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[oid]
	if !ok {
		return fmt.Errorf("%w: no user found", common.ErrNotFound)
	}
	fn(&doc)
	r.docs[oid] = doc
	return nil
}
