//go:build unit

package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"coupon-service/internal/infra/repository"
	repositorymock "coupon-service/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeMigration(t *testing.T, dir, name, stmt string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(stmt), 0o644))
}

func newMockDB(t *testing.T) *repositorymock.MockDBTX {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return repositorymock.NewMockDBTX(ctrl)
}

// =============================================================================
// RunMigrations Tests
// =============================================================================

func TestRunMigrations(t *testing.T) {
	ctx := context.Background()
	okTag := pgconn.NewCommandTag("CREATE TABLE")

	t.Run("success: applies up files in lexical order", func(t *testing.T) {
		dir := t.TempDir()
		writeMigration(t, dir, "000002_create_coupon_usages.up.sql", "CREATE TABLE coupon_usages ();")
		writeMigration(t, dir, "000001_create_coupons.up.sql", "CREATE TABLE coupons ();")
		writeMigration(t, dir, "000001_create_coupons.down.sql", "DROP TABLE coupons;")

		mockDB := newMockDB(t)
		gomock.InOrder(
			mockDB.EXPECT().Exec(ctx, "CREATE TABLE coupons ();").Return(okTag, nil),
			mockDB.EXPECT().Exec(ctx, "CREATE TABLE coupon_usages ();").Return(okTag, nil),
		)

		require.NoError(t, repository.RunMigrations(ctx, mockDB, dir))
	})

	t.Run("success: already applied objects are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeMigration(t, dir, "000001_create_coupons.up.sql", "CREATE TABLE coupons ();")
		writeMigration(t, dir, "000002_create_coupon_usages.up.sql", "CREATE TABLE coupon_usages ();")

		mockDB := newMockDB(t)
		gomock.InOrder(
			mockDB.EXPECT().Exec(ctx, "CREATE TABLE coupons ();").
				Return(pgconn.CommandTag{}, errors.New(`relation "coupons" already exists`)),
			mockDB.EXPECT().Exec(ctx, "CREATE TABLE coupon_usages ();").Return(okTag, nil),
		)

		require.NoError(t, repository.RunMigrations(ctx, mockDB, dir))
	})

	t.Run("error: execution failure stops the run", func(t *testing.T) {
		dir := t.TempDir()
		writeMigration(t, dir, "000001_create_coupons.up.sql", "CREATE TABLE coupons ();")
		writeMigration(t, dir, "000002_create_coupon_usages.up.sql", "CREATE TABLE coupon_usages ();")

		mockDB := newMockDB(t)
		mockDB.EXPECT().Exec(ctx, "CREATE TABLE coupons ();").
			Return(pgconn.CommandTag{}, errDBConnectionLost)

		err := repository.RunMigrations(ctx, mockDB, dir)
		require.Error(t, err)
		require.ErrorIs(t, err, errDBConnectionLost)
	})

	t.Run("success: empty directory is a no-op", func(t *testing.T) {
		mockDB := newMockDB(t)
		require.NoError(t, repository.RunMigrations(ctx, mockDB, t.TempDir()))
	})
}
