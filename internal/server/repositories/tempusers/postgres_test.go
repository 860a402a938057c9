package tempusers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/henkenclub/account/internal/common"
	"github.com/henkenclub/account/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestUpsert_InsertReturnsGeneratedID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+temporary_users\s*\(email,\s*alias,\s*password_digest,\s*display_name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(email\)\s+DO\s+UPDATE\s+SET.*RETURNING\s+id,\s*email,\s*alias,\s*password_digest,\s*display_name\s*$`

	rows := sqlmock.NewRows([]string{"id", "email", "alias", "password_digest", "display_name"}).
		AddRow("t-1", "a@x.com", "a", "digest", "a")
	mock.ExpectQuery(q).
		WithArgs("a@x.com", "a", "digest", "a").
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.TemporaryUser{
		Email: "a@x.com", Alias: "a", PasswordDigest: "digest", DisplayName: "a",
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.ID != "t-1" {
		t.Fatalf("unexpected temporary user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpsert_ResubmitKeepsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// Same email, new alias/digest: the ON CONFLICT branch returns the
	// original id with the refreshed attributes.
	rows := sqlmock.NewRows([]string{"id", "email", "alias", "password_digest", "display_name"}).
		AddRow("t-1", "a@x.com", "a2", "digest2", "Anna")
	mock.ExpectQuery(`INSERT\s+INTO\s+temporary_users`).
		WithArgs("a@x.com", "a2", "digest2", "Anna").
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.TemporaryUser{
		Email: "a@x.com", Alias: "a2", PasswordDigest: "digest2", DisplayName: "Anna",
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.ID != "t-1" || got.Alias != "a2" {
		t.Fatalf("unexpected temporary user: %+v", got)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+temporary_users`).WillReturnError(errors.New("db down"))

	_, err := repo.Upsert(context.Background(), &models.TemporaryUser{Email: "a@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*email,\s*alias,\s*password_digest,\s*display_name\s+FROM\s+temporary_users\s+WHERE\s+id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "email", "alias", "password_digest", "display_name"}).
		AddRow("t-1", "a@x.com", "a", "digest", "a")
	mock.ExpectQuery(q).WithArgs("t-1").WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Email != "a@x.com" {
		t.Fatalf("unexpected temporary user: %+v", got)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+temporary_users\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("t-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "t-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
