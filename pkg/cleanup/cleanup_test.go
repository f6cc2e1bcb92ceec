package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/challenger/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	order := make([]string, 0, 3)
	for _, name := range []string{"pool", "cache", "server"} {
		cleanup.Register(&cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				if name == "cache" {
					return errors.New("boom")
				}
				return nil
			},
		})
	}
	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "cache", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
