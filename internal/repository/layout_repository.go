package repository // repository holds data access logic for theater layouts

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel checks
	"math"         // math rounds prices to cents

	"github.com/iliyamo/cinema-showcase/internal/seatmap"
)

// Seat marks stored in theater_seat_marks.mark.
const (
	markOccupied = "OCCUPIED"
	markSelected = "SELECTED"
)

// LayoutRepo stores theater layouts.  A theater is spread over three tables:
// theaters (name, VIP threshold and prices in cents), theater_rows (one
// RowSpec per row_index) and theater_seat_marks (the occupied and selected
// coordinates fed to the classifier).
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// List returns every theater ordered by id.
func (r *LayoutRepo) List(ctx context.Context) ([]seatmap.Theater, error) {
	const q = `SELECT id, name, vip_row_threshold, regular_price_cents, vip_price_cents
	           FROM theaters
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	var out []seatmap.Theater
	for rows.Next() {
		t, err := scanTheater(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		if err := r.loadLayout(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Get retrieves a theater with its rows and seat marks.  It returns
// seatmap.ErrTheaterNotFound when no theater has the given id.
func (r *LayoutRepo) Get(ctx context.Context, id string) (seatmap.Theater, error) {
	const q = `SELECT id, name, vip_row_threshold, regular_price_cents, vip_price_cents
	           FROM theaters WHERE id = ?`
	t, err := scanTheater(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return seatmap.Theater{}, seatmap.ErrTheaterNotFound
		}
		return seatmap.Theater{}, err
	}
	if err := r.loadLayout(ctx, &t); err != nil {
		return seatmap.Theater{}, err
	}
	return t, nil
}

// Save replaces a theater and its layout in a single transaction.  Rows
// and marks are rewritten from scratch so the stored layout always matches
// t exactly.
func (r *LayoutRepo) Save(ctx context.Context, t seatmap.Theater) (err error) {
	if err = t.Validate(); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO theaters (id, name, vip_row_threshold, regular_price_cents, vip_price_cents)
		 VALUES (?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE name = VALUES(name), vip_row_threshold = VALUES(vip_row_threshold),
		   regular_price_cents = VALUES(regular_price_cents), vip_price_cents = VALUES(vip_price_cents)`,
		t.ID, t.Name, t.Rules.VIPRowThreshold, toCents(t.Rules.RegularPrice), toCents(t.Rules.VIPPrice)); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM theater_rows WHERE theater_id = ?`, t.ID); err != nil {
		return err
	}
	query := `INSERT INTO theater_rows (theater_id, row_index, left_count, gap_before, center_count, gap_after_center, right_count) VALUES `
	args := make([]interface{}, 0, len(t.Rows)*7)
	for i, rs := range t.Rows {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?)"
		args = append(args, t.ID, i, rs.Left, rs.GapBefore, rs.Center, rs.GapAfterCenter, rs.Right)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM theater_seat_marks WHERE theater_id = ?`, t.ID); err != nil {
		return err
	}
	marks := len(t.Rules.Occupied) + len(t.Rules.Selected)
	if marks == 0 {
		return nil
	}
	query = `INSERT INTO theater_seat_marks (theater_id, row_index, seat_column, mark) VALUES `
	args = make([]interface{}, 0, marks*4)
	add := func(c seatmap.Coord, mark string) {
		if len(args) > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, t.ID, c.RowIndex, c.Column, mark)
	}
	for _, c := range t.Rules.Occupied {
		add(c, markOccupied)
	}
	for _, c := range t.Rules.Selected {
		add(c, markSelected)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTheater(s rowScanner) (seatmap.Theater, error) {
	var (
		t                    seatmap.Theater
		regularCents, vipCnt int64
	)
	if err := s.Scan(&t.ID, &t.Name, &t.Rules.VIPRowThreshold, &regularCents, &vipCnt); err != nil {
		return seatmap.Theater{}, err
	}
	t.Rules.RegularPrice = fromCents(regularCents)
	t.Rules.VIPPrice = fromCents(vipCnt)
	return t, nil
}

func (r *LayoutRepo) loadLayout(ctx context.Context, t *seatmap.Theater) error {
	const qRows = `SELECT left_count, gap_before, center_count, gap_after_center, right_count
	               FROM theater_rows
	               WHERE theater_id = ?
	               ORDER BY row_index`
	rows, err := r.db.QueryContext(ctx, qRows, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rs seatmap.RowSpec
		if err := rows.Scan(&rs.Left, &rs.GapBefore, &rs.Center, &rs.GapAfterCenter, &rs.Right); err != nil {
			return err
		}
		t.Rows = append(t.Rows, rs)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const qMarks = `SELECT row_index, seat_column, mark
	                FROM theater_seat_marks
	                WHERE theater_id = ?
	                ORDER BY row_index, seat_column`
	marks, err := r.db.QueryContext(ctx, qMarks, t.ID)
	if err != nil {
		return err
	}
	defer marks.Close()
	for marks.Next() {
		var (
			c    seatmap.Coord
			mark string
		)
		if err := marks.Scan(&c.RowIndex, &c.Column, &mark); err != nil {
			return err
		}
		switch mark {
		case markOccupied:
			t.Rules.Occupied = append(t.Rules.Occupied, c)
		case markSelected:
			t.Rules.Selected = append(t.Rules.Selected, c)
		}
	}
	return marks.Err()
}

func toCents(price float64) int64 { return int64(math.Round(price * 100)) }

func fromCents(cents int64) float64 { return float64(cents) / 100 }
