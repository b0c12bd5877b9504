package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCall records one statement handed to a Querier
type execCall struct {
	sql  string
	args []any
}

type fakeQuerier struct {
	calls   []execCall
	execErr error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func TestAppendActivity_WritesExactlyOneRow(t *testing.T) {
	q := &fakeQuerier{}

	err := appendActivity(context.Background(), q, "Job Created", "New job added: Clerk")
	require.NoError(t, err)

	require.Len(t, q.calls, 1)
	call := q.calls[0]
	assert.Contains(t, call.sql, "INSERT INTO activity_log")
	assert.Contains(t, call.sql, "action")
	assert.Contains(t, call.sql, "details")
	assert.Equal(t, []any{"Job Created", "New job added: Clerk"}, call.args)
}

func TestAppendActivity_PropagatesExecError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("connection reset")}

	err := appendActivity(context.Background(), q, "Job Deleted", "Job with id x deleted.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestInsertMany_EmptyBatchTouchesNothing(t *testing.T) {
	// a nil connection would panic on any database access
	repo := NewJobRepository(nil)

	jobs, err := repo.InsertMany(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestDeleteManyStatement_EmptyIDSetMatchesNoRows(t *testing.T) {
	sql, args, err := statementBuilder().
		Delete("jobs").
		Where(squirrel.Eq{"id": []string{}}).
		ToSql()
	require.NoError(t, err)
	assert.Empty(t, args)
	// squirrel renders an empty IN set as a contradiction, never bare SQL
	assert.Contains(t, sql, "(1=0)")
}
