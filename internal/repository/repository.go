package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"food_truck_tracker/internal/metrics"
	"food_truck_tracker/internal/models"
)

// MatchKind selects how a Condition compares a column with its value.
type MatchKind int

const (
	// MatchEqual keeps rows whose column equals the value.
	MatchEqual MatchKind = iota
	// MatchLike keeps rows whose text column contains the value.
	MatchLike
)

// Condition filters on one direct column of an entity. Property may be
// the JSON name, the Go field name or the column name.
type Condition struct {
	Property string
	Value    string
	Match    MatchKind
}

func Equal(property, value string) Condition {
	return Condition{Property: property, Value: value, Match: MatchEqual}
}

func Like(property, value string) Condition {
	return Condition{Property: property, Value: value, Match: MatchLike}
}

// Repository provides CRUD and property queries for one entity kind.
// It holds no per-request state and is safe for concurrent use.
type Repository[T models.Entity] struct {
	db     *gorm.DB
	schema *schema.Schema
}

// New parses T's schema and returns a repository for it.
func New[T models.Entity](db *gorm.DB) (*Repository[T], error) {
	s, err := schema.Parse(new(T), &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &Repository[T]{db: db, schema: s}, nil
}

// Name is the entity's type name, used in errors, logs and metrics.
func (r *Repository[T]) Name() string {
	return r.schema.Name
}

// GetByID returns the row with the given primary key, with its direct
// references loaded. A missing row yields (nil, nil).
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Preload(clause.Associations).First(&entity, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		metrics.ObserveRepository(r.Name(), "get_by_id", nil)
		return nil, nil
	case err != nil:
		err = r.fail("get_by_id", err)
		metrics.ObserveRepository(r.Name(), "get_by_id", err)
		return nil, err
	}
	metrics.ObserveRepository(r.Name(), "get_by_id", nil)
	return &entity, nil
}

// Insert persists a new row and returns its generated id. Referenced rows
// are never created or updated as a side effect.
//
// If the id cannot be read back after the commit, Insert logs a warning
// and returns 0 without an error.
func (r *Repository[T]) Insert(ctx context.Context, entity *T) (uint, error) {
	syncReferences(entity)
	err := r.transaction(ctx, "insert", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(entity).Error
	})
	if err != nil {
		return 0, err
	}

	id := (*entity).PrimaryKey()
	if id == 0 {
		logrus.WithField("entity", r.Name()).Warn("repository: could not read back generated id")
	}
	return id, nil
}

// Update replaces every column of the row matching the entity's id.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	syncReferences(entity)
	return r.transaction(ctx, "update", func(tx *gorm.DB) error {
		res := tx.Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s %d: %w", r.Name(), (*entity).PrimaryKey(), ErrNotFound)
		}
		return nil
	})
}

// Delete removes the row matching the entity's id. Rows that reference it
// through a cascading foreign key are removed by the store.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	return r.transaction(ctx, "delete", func(tx *gorm.DB) error {
		res := tx.Delete(entity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%s %d: %w", r.Name(), (*entity).PrimaryKey(), ErrNotFound)
		}
		return nil
	})
}

// GetAll returns every row, ordered by primary key.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.query(ctx, "get_all")
}

// GetByPropertyEqual returns the rows whose property equals value. The
// value is converted to the column's type before comparison.
func (r *Repository[T]) GetByPropertyEqual(ctx context.Context, property, value string) ([]T, error) {
	return r.query(ctx, "get_by_property_equal", Equal(property, value))
}

// GetByPropertyLike returns the rows whose text property contains value.
// Case sensitivity follows the store's collation.
func (r *Repository[T]) GetByPropertyLike(ctx context.Context, property, value string) ([]T, error) {
	return r.query(ctx, "get_by_property_like", Like(property, value))
}

// Where returns the rows matching all conditions.
func (r *Repository[T]) Where(ctx context.Context, conds ...Condition) ([]T, error) {
	return r.query(ctx, "where", conds...)
}

func (r *Repository[T]) query(ctx context.Context, op string, conds ...Condition) ([]T, error) {
	exprs := make([]clause.Expression, 0, len(conds))
	for _, cond := range conds {
		expr, err := r.expression(cond)
		if err != nil {
			metrics.ObserveRepository(r.Name(), op, err)
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	entities := make([]T, 0)
	q := r.db.WithContext(ctx).Preload(clause.Associations)
	if len(exprs) > 0 {
		q = q.Where(clause.And(exprs...))
	}
	err := q.Order(clause.OrderByColumn{
		Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey},
	}).Find(&entities).Error
	if err != nil {
		err = r.fail(op, err)
	}
	metrics.ObserveRepository(r.Name(), op, err)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// expression turns a condition into SQL. All string-keyed property
// dispatch happens here and in field.
func (r *Repository[T]) expression(cond Condition) (clause.Expression, error) {
	field, err := r.field(cond.Property)
	if err != nil {
		return nil, err
	}
	column := clause.Column{Table: clause.CurrentTable, Name: field.DBName}

	switch cond.Match {
	case MatchEqual:
		v, err := convertValue(field, cond.Value)
		if err != nil {
			return nil, err
		}
		return clause.Eq{Column: column, Value: v}, nil
	case MatchLike:
		if field.DataType != schema.String {
			return nil, fmt.Errorf("%w: %s.%s is not a text column", ErrInvalidProperty, r.Name(), cond.Property)
		}
		return clause.Expr{
			SQL:  `? LIKE ? ESCAPE '\'`,
			Vars: []interface{}{column, "%" + escapeLike(cond.Value) + "%"},
		}, nil
	default:
		return nil, fmt.Errorf("unknown match kind %d", cond.Match)
	}
}

// field resolves a property name to a column. Relations have no column
// and are rejected along with unknown names.
func (r *Repository[T]) field(property string) (*schema.Field, error) {
	if property != "" {
		for _, f := range r.schema.Fields {
			if f.DBName == "" {
				continue
			}
			if f.Name == property || f.DBName == property || jsonName(f) == property {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s has no column %q", ErrInvalidProperty, r.Name(), property)
}

func (r *Repository[T]) transaction(ctx context.Context, op string, fn func(tx *gorm.DB) error) (err error) {
	defer func() { metrics.ObserveRepository(r.Name(), op, err) }()

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return r.fail(op, tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if fnErr := fn(tx); fnErr != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logrus.WithError(rbErr).WithField("entity", r.Name()).Error("repository: rollback failed")
		}
		if errors.Is(fnErr, ErrNotFound) {
			return fnErr
		}
		return r.fail(op, fnErr)
	}

	if commitErr := tx.Commit().Error; commitErr != nil {
		return r.fail(op, commitErr)
	}
	return nil
}

func (r *Repository[T]) fail(op string, err error) error {
	logrus.WithError(err).WithFields(logrus.Fields{
		"entity": r.Name(),
		"op":     op,
	}).Warn("repository: operation failed")
	return &PersistenceError{Op: op, Entity: r.Name(), Err: err}
}

// syncReferences copies referenced ids into foreign key columns for
// entities that carry references.
func syncReferences(entity interface{}) {
	if s, ok := entity.(interface{ SyncReferences() }); ok {
		s.SyncReferences()
	}
}

func jsonName(f *schema.Field) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func convertValue(f *schema.Field, value string) (interface{}, error) {
	var (
		v   interface{}
		err error
	)
	switch f.DataType {
	case schema.Int:
		v, err = strconv.ParseInt(value, 10, 64)
	case schema.Uint:
		v, err = strconv.ParseUint(value, 10, 64)
	case schema.Float:
		v, err = strconv.ParseFloat(value, 64)
	case schema.Bool:
		v, err = strconv.ParseBool(value)
	default:
		v = value
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q for %s: %v", ErrInvalidValue, value, f.Name, err)
	}
	return v, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
