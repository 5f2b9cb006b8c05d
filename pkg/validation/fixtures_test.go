package validation_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/ruleset/pkg/model"
	"github.com/dmitrymomot/ruleset/pkg/schema"
)

type user struct {
	ID        int64
	Login     string
	Nickname  string
	Bio       string
	Age       int32
	Balance   float64 `db:"balance_amount"`
	Score     *int16
	BirthDay  time.Time
	DeletedAt *time.Time
	Active    bool
	Ignored   string `db:"-"`
	Address   string
}

func (user) TableName() string { return "users" }

type account struct {
	Email string
	Phone string
}

func (*account) TableName() string { return "accounts" }

type userView struct {
	model.Projection[user]
	Login    string
	Nickname string `validate:"maxlen=10"`
	Contact  string `inherit:"Email,from=accounts"`
	Alias    string `inherit:"Login"`
	Ghost    string `inherit:"Login,from=nowhere"`
	Age      int32
}

type accessorModel struct {
	Name string `validate:"maxlen=40"`
	Code string `validate:"size=2:8"`
}

func (m accessorModel) GetName() string { return m.Name }

func (accessorModel) AccessorConstraints() map[string]string {
	return map[string]string{"GetName": "maxlen=20,required"}
}

func fixtureColumns() map[string][]schema.Column {
	return map[string][]schema.Column{
		"users": {
			{Property: "id", Nullable: false, Precision: 64, Scale: 0, ColumnCount: 1},
			{Property: "login", Length: 30, Nullable: false, ColumnCount: 1},
			{Property: "nickname", Length: 50, Nullable: true, ColumnCount: 1},
			{Property: "bio", Length: 0, Nullable: true, ColumnCount: 1},
			{Property: "age", Nullable: false, Precision: 20, Scale: 0, ColumnCount: 1},
			{Property: "balance_amount", Nullable: true, Precision: 12, Scale: 2, ColumnCount: 1},
			{Property: "score", Nullable: true, Precision: 10, Scale: 0, ColumnCount: 1},
			{Property: "birth_day", Nullable: false, ColumnCount: 1},
			{Property: "deleted_at", Nullable: true, ColumnCount: 1},
			{Property: "active", Nullable: false, ColumnCount: 1},
			{Property: "ignored", Length: 10, ColumnCount: 1},
			{Property: "address", Length: 100, Nullable: false, ColumnCount: 2},
		},
		"accounts": {
			{Property: "email", Length: 255, Nullable: false, ColumnCount: 1},
		},
	}
}

type countingProvider struct {
	next  schema.Provider
	calls atomic.Int64
	delay time.Duration
}

func (p *countingProvider) Columns(ctx context.Context, table string) ([]schema.Column, error) {
	p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.next.Columns(ctx, table)
}

var errStorageDown = errors.New("storage down")

func failingProvider() schema.Provider {
	return schema.ProviderFunc(func(context.Context, string) ([]schema.Column, error) {
		return nil, errStorageDown
	})
}

type product struct {
	Title string  `validate:"maxlen=80,notblank"`
	Price float64 `validate:"digits=8:2,min=0"`
}

func (product) TableName() string { return "products" }
