package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePhotos(t *testing.T) {
	require.Equal(t, []string{"a.jpg", "b.jpg"}, decodePhotos([]byte(`["a.jpg","b.jpg"]`)))
	require.Equal(t, []string{}, decodePhotos(nil))
	require.Equal(t, []string{}, decodePhotos([]byte(`null`)))
	require.Equal(t, []string{}, decodePhotos([]byte(`{broken`)))
}

func TestPhotosOrEmpty(t *testing.T) {
	require.Equal(t, []string{}, photosOrEmpty(nil))
	require.Equal(t, []string{"x"}, photosOrEmpty([]string{"x"}))
}
