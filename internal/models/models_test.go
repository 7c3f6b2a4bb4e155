package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	for _, s := range []Status{"", "applied", "Ghosted", "APPLIED", "Offer "} {
		assert.False(t, s.Valid(), "expected %q to be invalid", s)
	}
}

func TestAttachmentKindValid(t *testing.T) {
	assert.True(t, KindResume.Valid())
	assert.True(t, KindCoverLetter.Valid())
	assert.False(t, AttachmentKind("transcript").Valid())
	assert.False(t, AttachmentKind("").Valid())
}

func TestAttachmentRef(t *testing.T) {
	app := &Application{ResumePath: "resumes/a.pdf", CoverLetterPath: "cover_letters/a.pdf"}
	assert.Equal(t, "resumes/a.pdf", app.AttachmentRef(KindResume))
	assert.Equal(t, "cover_letters/a.pdf", app.AttachmentRef(KindCoverLetter))

	bare := &Application{ResumePath: "resumes/b.pdf"}
	assert.Equal(t, "", bare.AttachmentRef(KindCoverLetter))
}
