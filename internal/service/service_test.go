package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"inventory-api/internal/auth"
	"inventory-api/internal/repository/sqlite"
)

type testEnv struct {
	store      *sqlite.Store
	tokens     *auth.TokenService
	users      UserService
	categories CategoryService
	products   ProductService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := sqlite.NewStore(context.Background(), db)
	require.NoError(t, err)

	tokens, err := auth.NewTokenService("service-test-secret")
	require.NoError(t, err)

	return &testEnv{
		store:      store,
		tokens:     tokens,
		users:      NewUserService(store.Users, auth.NewPasswordHasher(bcrypt.MinCost), tokens),
		categories: NewCategoryService(store.Categories),
		products:   NewProductService(store.Products, store.Categories),
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
