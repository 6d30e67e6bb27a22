package elf_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/romdeps/internal/adapters/elf"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCachingReader_ReadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockMetadataReader(ctrl)

	want := domain.Metadata{Needed: []string{"liblog.so"}}
	next.EXPECT().Read(gomock.Any(), "/lib/libfoo.so").Return(want, nil).Times(1)

	r, err := elf.NewCachingReader(next, 16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Read(context.Background(), "/lib/libfoo.so")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}

func TestCachingReader_CachesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockMetadataReader(ctrl)
	next.EXPECT().Read(gomock.Any(), "/etc/init.rc").Return(domain.Metadata{}, domain.ErrNotELF).Times(1)

	r, err := elf.NewCachingReader(next, 0)
	require.NoError(t, err)

	for range 3 {
		_, err := r.Read(context.Background(), "/etc/init.rc")
		require.ErrorIs(t, err, domain.ErrNotELF)
	}
}

func TestCachingReader_DoesNotCacheCancelledReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockMetadataReader(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	next.EXPECT().Read(ctx, "/lib/libfoo.so").Return(domain.Metadata{}, context.Canceled)
	next.EXPECT().Read(gomock.Any(), "/lib/libfoo.so").Return(domain.Metadata{Needed: []string{"libc.so"}}, nil)

	r, err := elf.NewCachingReader(next, 4)
	require.NoError(t, err)

	_, err = r.Read(ctx, "/lib/libfoo.so")
	require.ErrorIs(t, err, context.Canceled)

	md, err := r.Read(context.Background(), "/lib/libfoo.so")
	require.NoError(t, err)
	assert.Equal(t, []string{"libc.so"}, md.Needed)
}

func TestFactory_New(t *testing.T) {
	f := elf.NewFactory()

	r, err := f.New(domain.MetadataConfig{Tool: domain.MetadataToolNative})
	require.NoError(t, err)
	assert.IsType(t, &elf.CachingReader{}, r)

	_, err = f.New(domain.MetadataConfig{Tool: domain.MetadataToolObjdump, Command: "aarch64-linux-android-objdump"})
	require.NoError(t, err)

	_, err = f.New(domain.MetadataConfig{Tool: "strings"})
	require.ErrorContains(t, err, domain.ErrUnknownMetadataTool.Error())
}
