package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"platra/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantErr     error
		wantType    string
		wantImgName string
	}{
		{name: "png", data: pngHeader, wantType: "image/png", wantImgName: "logo.png"},
		{name: "gif", data: []byte("GIF89a......"), wantType: "image/gif", wantImgName: "logo.png"},
		{name: "text is rejected", data: []byte("hello world"), wantErr: model.ErrInvalidImage},
		{name: "oversized", data: append(pngHeader, make([]byte, MaxImageSize)...), wantErr: model.ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Read("dir/logo.png", bytes.NewReader(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, img.ContentType)
			assert.Equal(t, tt.wantImgName, img.Name)
			assert.Equal(t, tt.data, img.Data)
		})
	}
}

func TestFileLoader_Load(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "logos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "logos", "a.png"), pngHeader, 0o644))

	loader := NewFileLoader(root, zerolog.Nop())
	ctx := context.Background()

	img, err := loader.Load(ctx, "logos/a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", img.Name)

	img, err = loader.Load(ctx, "/logos/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = loader.Load(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrOutsideRoot)

	_, err = loader.Load(ctx, "logos/missing.png")
	assert.Error(t, err)
}

type stubGetter struct {
	objects map[string][]byte
	calls   []string
}

func (s *stubGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	s.calls = append(s.calls, *in.Key)
	data, ok := s.objects[*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

type mockLoader struct {
	loadFunc func(ctx context.Context, ref string) (*Image, error)
}

func (m *mockLoader) Load(ctx context.Context, ref string) (*Image, error) {
	return m.loadFunc(ctx, ref)
}

func TestS3Loader_Load(t *testing.T) {
	getter := &stubGetter{objects: map[string][]byte{"media/a.png": pngHeader}}
	loader := NewS3LoaderWithClient(getter, "bucket", zerolog.Nop())

	img, err := loader.Load(context.Background(), "media/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = loader.Load(context.Background(), "media/b.png")
	assert.Error(t, err)
}

func TestFallbackLoader(t *testing.T) {
	ctx := context.Background()
	localImg := &Image{Name: "local.png"}

	t.Run("primary hit uses prefix", func(t *testing.T) {
		getter := &stubGetter{objects: map[string][]byte{"media/a.png": pngHeader}}
		local := &mockLoader{loadFunc: func(context.Context, string) (*Image, error) {
			t.Error("local loader should not be called")
			return nil, errors.New("unexpected")
		}}
		loader := NewFallbackLoader(NewS3LoaderWithClient(getter, "b", zerolog.Nop()), local, "media/", zerolog.Nop())

		img, err := loader.Load(ctx, "a.png")
		require.NoError(t, err)
		assert.Equal(t, "a.png", img.Name)
		assert.Equal(t, []string{"media/a.png"}, getter.calls)
	})

	t.Run("primary miss falls back without prefix", func(t *testing.T) {
		getter := &stubGetter{}
		var gotRef string
		local := &mockLoader{loadFunc: func(_ context.Context, ref string) (*Image, error) {
			gotRef = ref
			return localImg, nil
		}}
		loader := NewFallbackLoader(NewS3LoaderWithClient(getter, "b", zerolog.Nop()), local, "media/", zerolog.Nop())

		img, err := loader.Load(ctx, "a.png")
		require.NoError(t, err)
		assert.Same(t, localImg, img)
		assert.Equal(t, "a.png", gotRef)
	})

	t.Run("nil primary", func(t *testing.T) {
		local := &mockLoader{loadFunc: func(context.Context, string) (*Image, error) { return localImg, nil }}
		loader := NewFallbackLoader(nil, local, "media/", zerolog.Nop())

		img, err := loader.Load(ctx, "a.png")
		require.NoError(t, err)
		assert.Same(t, localImg, img)
	})
}
