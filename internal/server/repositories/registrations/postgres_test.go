package registrations

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

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

func regColumns() []string {
	return []string{"token", "code", "expired_at", "user_id"}
}

func TestUpsert_StoresPair(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expiry := time.Now().Add(30 * time.Minute)

	q := `(?s)^INSERT\s+INTO\s+registrations\s*\(token,\s*code,\s*expired_at,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+UPDATE\s+SET.*RETURNING\s+token,\s*code,\s*expired_at,\s*user_id\s*$`

	rows := sqlmock.NewRows(regColumns()).AddRow("tok-1", "code-1", expiry, "t-1")
	mock.ExpectQuery(q).
		WithArgs("tok-1", "code-1", expiry, "t-1").
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.Registration{
		Token: "tok-1", Code: "code-1", ExpiredAt: expiry, UserID: "t-1",
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.Token != "tok-1" || got.UserID != "t-1" {
		t.Fatalf("unexpected registration: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpsert_ReplacesPairForSameUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newExpiry := time.Now().Add(time.Hour)
	rows := sqlmock.NewRows(regColumns()).AddRow("tok-2", "code-2", newExpiry, "t-1")
	mock.ExpectQuery(`INSERT\s+INTO\s+registrations`).
		WithArgs("tok-2", "code-2", newExpiry, "t-1").
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.Registration{
		Token: "tok-2", Code: "code-2", ExpiredAt: newExpiry, UserID: "t-1",
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.Token != "tok-2" {
		t.Fatalf("unexpected registration: %+v", got)
	}
}

func TestFindByToken_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expiry := time.Now().Add(10 * time.Minute)

	q := `(?s)^SELECT\s+token,\s*code,\s*expired_at,\s*user_id\s+FROM\s+registrations\s+WHERE\s+token\s*=\s*\$1\s*$`
	rows := sqlmock.NewRows(regColumns()).AddRow("tok-1", "code-1", expiry, "t-1")
	mock.ExpectQuery(q).WithArgs("tok-1").WillReturnRows(rows)

	got, err := repo.FindByToken(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("FindByToken error: %v", err)
	}
	if got.Code != "code-1" || got.UserID != "t-1" {
		t.Fatalf("unexpected registration: %+v", got)
	}
}

func TestFindByToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByToken(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestRotateCode_PreservesTokenAndExpiry(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expiry := time.Now().Add(5 * time.Minute)

	q := `(?s)^UPDATE\s+registrations\s+SET\s+code\s*=\s*\$2\s+WHERE\s+token\s*=\s*\$1\s+RETURNING\s+token,\s*code,\s*expired_at,\s*user_id\s*$`
	rows := sqlmock.NewRows(regColumns()).AddRow("tok-1", "code-new", expiry, "t-1")
	mock.ExpectQuery(q).WithArgs("tok-1", "code-new").WillReturnRows(rows)

	got, err := repo.RotateCode(context.Background(), "tok-1", "code-new")
	if err != nil {
		t.Fatalf("RotateCode error: %v", err)
	}
	if got.Code != "code-new" || got.Token != "tok-1" {
		t.Fatalf("unexpected registration: %+v", got)
	}
}

func TestRotateCode_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+registrations`).WithArgs("ghost", "c").WillReturnError(sql.ErrNoRows)

	_, err := repo.RotateCode(context.Background(), "ghost", "c")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteByToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+registrations\s+WHERE\s+token\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("tok-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByToken(context.Background(), "tok-1"); err != nil {
		t.Fatalf("DeleteByToken error: %v", err)
	}
}

func TestDeleteByToken_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+registrations`).WillReturnError(errors.New("db down"))

	err := repo.DeleteByToken(context.Background(), "tok-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
