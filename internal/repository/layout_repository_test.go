package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

func newMockRepo(t *testing.T) (*LayoutRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewLayoutRepo(db), mock
}

func expectLayout(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM theater_rows")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"left_count", "gap_before", "center_count", "gap_after_center", "right_count"}).
			AddRow(2, 2, 0, 2, 2).
			AddRow(4, 0, 10, 0, 4))
	mock.ExpectQuery(regexp.QuoteMeta("FROM theater_seat_marks")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"row_index", "seat_column", "mark"}).
			AddRow(1, 5, "OCCUPIED").
			AddRow(1, 15, "SELECTED"))
}

func TestLayoutRepo_Get(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM theaters WHERE id = ?")).
		WithArgs("hall-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "vip_row_threshold", "regular_price_cents", "vip_price_cents"}).
			AddRow("hall-a", "Hall A", 10, 5000, 15000))
	expectLayout(mock, "hall-a")

	th, err := repo.Get(context.Background(), "hall-a")
	require.NoError(t, err)
	assert.Equal(t, "Hall A", th.Name)
	assert.Equal(t, 50.0, th.Rules.RegularPrice)
	assert.Equal(t, 150.0, th.Rules.VIPPrice)
	assert.Equal(t, []seatmap.RowSpec{
		{Left: 2, GapBefore: 2, Center: 0, GapAfterCenter: 2, Right: 2},
		{Left: 4, Center: 10, Right: 4},
	}, th.Rows)
	assert.Equal(t, []seatmap.Coord{{RowIndex: 1, Column: 5}}, th.Rules.Occupied)
	assert.Equal(t, []seatmap.Coord{{RowIndex: 1, Column: 15}}, th.Rules.Selected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_GetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM theaters WHERE id = ?")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "vip_row_threshold", "regular_price_cents", "vip_price_cents"}))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, seatmap.ErrTheaterNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM theaters")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "vip_row_threshold", "regular_price_cents", "vip_price_cents"}).
			AddRow("a", "A", 10, 5000, 15000).
			AddRow("b", "B", 1, 1250, 2000))
	expectLayout(mock, "a")
	expectLayout(mock, "b")

	out, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, 12.5, out[1].Rules.RegularPrice)
	assert.Len(t, out[1].Rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_Save(t *testing.T) {
	repo, mock := newMockRepo(t)
	th := seatmap.Theater{
		ID:   "hall-a",
		Name: "Hall A",
		Rows: []seatmap.RowSpec{{Left: 1}, {Center: 2}},
		Rules: seatmap.Rules{
			VIPRowThreshold: 1, RegularPrice: 50, VIPPrice: 150,
			Occupied: []seatmap.Coord{{RowIndex: 0, Column: 1}},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theaters")).
		WithArgs("hall-a", "Hall A", 1, int64(5000), int64(15000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM theater_rows")).
		WithArgs("hall-a").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theater_rows")).
		WithArgs("hall-a", 0, 1, 0, 0, 0, 0, "hall-a", 1, 0, 0, 2, 0, 0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM theater_seat_marks")).
		WithArgs("hall-a").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theater_seat_marks")).
		WithArgs("hall-a", 0, 1, "OCCUPIED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), th))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_SaveRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	th := seatmap.Theater{ID: "x", Rows: []seatmap.RowSpec{{Left: 1}}, Rules: seatmap.DefaultRules()}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theaters")).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.EqualError(t, repo.Save(context.Background(), th), "boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_SaveRejectsInvalid(t *testing.T) {
	repo, _ := newMockRepo(t)
	err := repo.Save(context.Background(), seatmap.Theater{ID: "x"})
	assert.ErrorIs(t, err, seatmap.ErrInvalidLayout)
}

func TestLayoutRepo_SaveRejectsDuplicateMarks(t *testing.T) {
	repo, mock := newMockRepo(t)
	th := seatmap.Theater{
		ID:   "hall-a",
		Rows: []seatmap.RowSpec{{Left: 4}},
		Rules: seatmap.Rules{
			RegularPrice: 50, VIPPrice: 150, VIPRowThreshold: 10,
			Occupied: []seatmap.Coord{{RowIndex: 0, Column: 2}, {RowIndex: 0, Column: 2}},
		},
	}

	err := repo.Save(context.Background(), th)
	assert.ErrorIs(t, err, seatmap.ErrInvalidLayout)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_SaveOccupiedAndSelectedSameSeat(t *testing.T) {
	repo, mock := newMockRepo(t)
	c := seatmap.Coord{RowIndex: 0, Column: 1}
	th := seatmap.Theater{
		ID:   "hall-a",
		Name: "Hall A",
		Rows: []seatmap.RowSpec{{Left: 1}},
		Rules: seatmap.Rules{
			VIPRowThreshold: 10, RegularPrice: 50, VIPPrice: 150,
			Occupied: []seatmap.Coord{c},
			Selected: []seatmap.Coord{c},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theaters")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM theater_rows")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theater_rows")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM theater_seat_marks")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO theater_seat_marks")).
		WithArgs("hall-a", 0, 1, "OCCUPIED", "hall-a", 0, 1, "SELECTED").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), th))
	assert.NoError(t, mock.ExpectationsWereMet())
}
