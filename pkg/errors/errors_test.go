package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/crosscheck-io/crosscheck/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestMissingSheetError(t *testing.T) {
	t.Run("with workbook", func(t *testing.T) {
		err := pkgerrors.NewMissingSheetError("report.xlsx", "Cognos", "PBI")
		assert.Equal(t, "workbook report.xlsx is missing required sheet(s): Cognos, PBI", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMissingSheet))
	})

	t.Run("without workbook", func(t *testing.T) {
		err := pkgerrors.NewMissingSheetError("", "PBI")
		assert.Equal(t, "missing required sheet(s): PBI", err.Error())
		assert.True(t, pkgerrors.IsMissingSheet(err))
	})

	t.Run("wrapped", func(t *testing.T) {
		base := pkgerrors.NewMissingSheetError("report.xlsx", "Cognos")
		wrapped := errors.Join(errors.New("upload failed"), base)
		assert.True(t, pkgerrors.IsMissingSheet(wrapped))
	})
}

func TestNoCommonColumnsError(t *testing.T) {
	err := pkgerrors.NewNoCommonColumnsError("Cognos", "PBI")
	assert.Equal(t, "no common columns between Cognos and PBI to use as dimensions", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNoCommonColumns))
	assert.True(t, pkgerrors.IsNoCommonColumns(err))
	assert.False(t, pkgerrors.IsMissingSheet(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("separator", "", "cannot be empty")
		assert.Equal(t, "validation failed for field separator: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected EOF")
	err := pkgerrors.WrapParse("xlsx", "report.xlsx", base)
	assert.Equal(t, "parse error in xlsx file report.xlsx: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, base))

	assert.Nil(t, pkgerrors.WrapParse("xlsx", "report.xlsx", nil))
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "/tmp/out.xlsx", base)
	assert.Equal(t, "IO error during write of /tmp/out.xlsx: permission denied", err.Error())
	assert.True(t, errors.Is(err, base))

	assert.Nil(t, pkgerrors.WrapIO("write", "/tmp/out.xlsx", nil))
}
