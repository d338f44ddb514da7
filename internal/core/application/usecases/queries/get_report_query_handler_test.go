package queries_test

import (
	"errors"
	"testing"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetReportQueryHandler_Handle(t *testing.T) {
	t.Run("returns the rendered text", func(t *testing.T) {
		renderer := new(MockRenderer)
		renderer.On("Render", mock.Anything, mock.AnythingOfType("*services.Analytics")).
			Return("=== Parcel Sizes ===\n", nil).Once()
		h := queries.NewGetReportQueryHandler(newCatalog(t), renderer, discard())

		text, err := h.Handle(t.Context(), queries.NewGetReportQuery())

		require.NoError(t, err)
		assert.Equal(t, "=== Parcel Sizes ===\n", text)
		renderer.AssertExpectations(t)
	})

	t.Run("render error", func(t *testing.T) {
		renderer := new(MockRenderer)
		renderer.On("Render", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()
		h := queries.NewGetReportQueryHandler(newCatalog(t), renderer, discard())

		_, err := h.Handle(t.Context(), queries.NewGetReportQuery())

		require.EqualError(t, err, "boom")
	})

	t.Run("not constructed query", func(t *testing.T) {
		h := queries.NewGetReportQueryHandler(newCatalog(t), new(MockRenderer), discard())

		_, err := h.Handle(t.Context(), queries.GetReportQuery{})

		require.ErrorIs(t, err, queries.ErrGetReportQueryIsNotConstructed)
	})
}
