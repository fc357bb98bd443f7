package mongodb

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/aussiebroadwan/forumroles/internal/forum/domain"
	"github.com/aussiebroadwan/forumroles/internal/forum/store"
	"github.com/aussiebroadwan/forumroles/pkg/idx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rolesRepo struct {
	coll *mongo.Collection
	sess mongo.Session
}

// bind joins ctx to the repo's session, if any, so operations run inside the
// open transaction.
func (r *rolesRepo) bind(ctx context.Context) context.Context {
	if r.sess == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, r.sess)
}

func (r *rolesRepo) FindOrCreateRole(ctx context.Context, name, courseID string) (domain.Role, bool, error) {
	ctx = r.bind(ctx)
	id := idx.New().String()
	now := time.Now().UTC()

	var doc roleDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name, "course_key": courseKey(courseID)},
		bson.M{"$setOnInsert": bson.M{
			"_id":         id,
			"course_id":   courseID,
			"permissions": bson.A{},
			"created_at":  now,
			"updated_at":  now,
		}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// Lost a concurrent upsert race; the winner's document is there now.
		role, err := r.GetRole(ctx, name, courseID)
		return role, false, err
	}
	if err != nil {
		return domain.Role{}, false, err
	}
	return doc.toDomain(), doc.ID == id, nil
}

func (r *rolesRepo) GetRole(ctx context.Context, name, courseID string) (domain.Role, error) {
	var doc roleDoc
	err := r.coll.FindOne(r.bind(ctx), bson.M{
		"name":       name,
		"course_key": courseKey(courseID),
	}).Decode(&doc)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	var doc roleDoc
	if err := r.coll.FindOne(r.bind(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *rolesRepo) ListRolesByCourse(ctx context.Context, courseID string) ([]domain.Role, error) {
	ctx = r.bind(ctx)
	cur, err := r.coll.Find(ctx,
		bson.M{"course_key": courseKey(courseID)},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}

	var docs []roleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(docs))
	for i, doc := range docs {
		roles[i] = doc.toDomain()
	}
	return roles, nil
}

func (r *rolesRepo) SaveRole(ctx context.Context, role domain.Role) error {
	res, err := r.coll.UpdateOne(r.bind(ctx),
		bson.M{"_id": role.ID},
		bson.M{"$set": bson.M{
			"name":       role.Name,
			"course_id":  role.CourseID,
			"course_key": courseKey(role.CourseID),
			"updated_at": time.Now().UTC(),
		}},
	)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) DeleteRole(ctx context.Context, roleID string) error {
	res, err := r.coll.DeleteOne(r.bind(ctx), bson.M{"_id": roleID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) AddPermission(ctx context.Context, roleID, permission string) error {
	return r.addPermissions(r.bind(ctx), roleID, []string{permission})
}

func (r *rolesRepo) addPermissions(ctx context.Context, roleID string, perms []string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": roleID},
		bson.M{
			"$addToSet": bson.M{"permissions": bson.M{"$each": perms}},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) HasPermission(ctx context.Context, roleID, permission string) (bool, error) {
	n, err := r.coll.CountDocuments(r.bind(ctx), bson.M{
		"_id":         roleID,
		"permissions": permission,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *rolesRepo) ListPermissions(ctx context.Context, roleID string) ([]string, error) {
	var doc roleDoc
	err := r.coll.FindOne(r.bind(ctx),
		bson.M{"_id": roleID},
		options.FindOne().SetProjection(bson.M{"permissions": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return sortedPermissions(doc.Permissions), nil
}

func (r *rolesRepo) InheritPermissions(ctx context.Context, roleID, sourceRoleID string) error {
	ctx = r.bind(ctx)
	perms, err := r.ListPermissions(ctx, sourceRoleID)
	if err != nil {
		return err
	}
	if len(perms) == 0 {
		return nil
	}
	return r.addPermissions(ctx, roleID, perms)
}

func sortedPermissions(perms []string) []string {
	out := slices.Clone(perms)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return out
}
