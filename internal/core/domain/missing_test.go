package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/romdeps/internal/core/domain"
)

func TestMissingSet_AccumulatesReferrers(t *testing.T) {
	m := domain.NewMissingSet()
	m.Add("libgone.so", "/system/bin/c")
	m.Add("libgone.so", "/system/bin/a")
	m.Add("libgone.so", "/system/bin/b")
	m.Add("libgone.so", "/system/bin/a")

	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Contains("libgone.so"))
	assert.Equal(t, []string{"libgone.so"}, m.Names())
	assert.Equal(t, []string{"/system/bin/a", "/system/bin/b", "/system/bin/c"}, m.ReferencedBy("libgone.so"))
}

func TestMissingSet_Merge(t *testing.T) {
	a := domain.NewMissingSet()
	a.Add("libx.so", "/bin/one")
	b := domain.NewMissingSet()
	b.Add("libx.so", "/bin/two")
	b.Add("liby.so", "/bin/two")

	a.Merge(b)

	assert.Equal(t, []string{"libx.so", "liby.so"}, a.Names())
	assert.Equal(t, []string{"/bin/one", "/bin/two"}, a.ReferencedBy("libx.so"))
	assert.Empty(t, a.ReferencedBy("libz.so"))
}
