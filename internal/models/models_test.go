package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModels(t *testing.T) {
	t.Run("Memo TableName", func(t *testing.T) {
		memo := Memo{}
		assert.Equal(t, "memo", memo.TableName())
	})
}
