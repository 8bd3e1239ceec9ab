package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	firebase "firebase.google.com/go/v4"
	"github.com/piresc/campusride/internal/pkg/constants"
	"github.com/piresc/campusride/internal/pkg/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthCollection = "_health"

// FirestoreClient wraps the document store with the reference and batch helpers repositories share
type FirestoreClient struct {
	Client *firestore.Client
}

// NewFirestoreClient opens the app's default database
func NewFirestoreClient(ctx context.Context, app *firebase.App) (*FirestoreClient, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}
	return &FirestoreClient{Client: client}, nil
}

func (f *FirestoreClient) Close() error {
	return f.Client.Close()
}

// CheckHealth performs a point read; a missing document still proves the store answers
func (f *FirestoreClient) CheckHealth(ctx context.Context) error {
	_, err := f.Client.Collection(healthCollection).Doc("ping").Get(ctx)
	if err != nil && !IsNotFound(err) {
		return err
	}
	return nil
}

// Ref returns the document reference for id in collection, or nil for an empty id
func (f *FirestoreClient) Ref(collection, id string) *firestore.DocumentRef {
	if id == "" {
		return nil
	}
	return f.Client.Collection(collection).Doc(id)
}

// Refs maps ids to references, dropping empty and duplicate ids
func (f *FirestoreClient) Refs(collection string, ids []string) []*firestore.DocumentRef {
	seen := make(map[string]struct{}, len(ids))
	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, f.Client.Collection(collection).Doc(id))
	}
	return refs
}

// GetAll fetches ids from collection in one round trip.
// Only documents that exist are returned, keyed by id.
func (f *FirestoreClient) GetAll(ctx context.Context, collection string, ids []string) (map[string]*firestore.DocumentSnapshot, error) {
	refs := f.Refs(collection, ids)
	out := make(map[string]*firestore.DocumentSnapshot, len(refs))
	if len(refs) == 0 {
		return out, nil
	}

	snaps, err := f.Client.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	for _, snap := range snaps {
		if snap.Exists() {
			out[snap.Ref.ID] = snap
		}
	}
	return out, nil
}

// Count runs a count aggregation over q
func (f *FirestoreClient) Count(ctx context.Context, q firestore.Query) (int64, error) {
	res, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected count result type %T", res["total"])
	}
	return v.GetIntegerValue(), nil
}

// Page counts q and fetches the requested window of it ordered by creation time
func (f *FirestoreClient) Page(ctx context.Context, q firestore.Query, p models.PageRequest) ([]*firestore.DocumentSnapshot, int64, error) {
	total, err := f.Count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(p.Offset()) >= total {
		return nil, total, nil
	}

	snaps, err := q.OrderBy(constants.FieldCreatedAt, firestore.Desc).
		Offset(p.Offset()).
		Limit(p.Limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, 0, err
	}
	return snaps, total, nil
}

// RefID returns the document id behind ref, or "" for a nil reference
func RefID(ref *firestore.DocumentRef) string {
	if ref == nil {
		return ""
	}
	return ref.ID
}

// RefIDs maps references to ids, dropping nil references
func RefIDs(refs []*firestore.DocumentRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil {
			ids = append(ids, ref.ID)
		}
	}
	return ids
}

func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
