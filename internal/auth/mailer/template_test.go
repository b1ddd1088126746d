package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOTPBody(t *testing.T) {
	body, err := renderOTPBody("123456")
	require.NoError(t, err)

	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "KomyuLink")
	assert.Contains(t, body, "expires in 5 minutes")
}

func TestRenderOTPBodyEscapesCode(t *testing.T) {
	body, err := renderOTPBody(`<script>`)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}
