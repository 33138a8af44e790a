package db

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	keys []string
}

// Exec records the table and the key arguments of every insert.
func (r *recordingExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	table := strings.Fields(strings.SplitN(sql, "INSERT INTO ", 2)[1])[0]
	key := table
	switch table {
	case "push_tokens":
		key += ":" + args[0].(string) + ":" + args[1].(string) + ":" + args[2].(string)
	case "app_users", "campaigns", "legacy_campaigns":
		key += ":" + args[0].(string)
	}
	r.keys = append(r.keys, key)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestSeedIsRepeatable(t *testing.T) {
	first, second := &recordingExecer{}, &recordingExecer{}

	require.NoError(t, Seed(context.Background(), first))
	require.NoError(t, Seed(context.Background(), second))

	assert.Equal(t, first.keys, second.keys)
	assert.Contains(t, first.keys, "push_tokens:user-001:demo-user-001-0:ios")
	assert.Contains(t, first.keys, "legacy_campaigns:legacy-demo-1")
}
