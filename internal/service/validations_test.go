package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yash-070702/Codash-next/internal/service"
)

func TestValidateHandle(t *testing.T) {
	testCases := []struct {
		Desc    string
		Handle  string
		WantErr bool
	}{
		{Desc: "plain name", Handle: "tourist", WantErr: false},
		{Desc: "digits and separators", Handle: "yash-070702.dev_1", WantErr: false},
		{Desc: "unicode letters", Handle: "führer42", WantErr: false},
		{Desc: "empty", Handle: "", WantErr: true},
		{Desc: "leading underscore", Handle: "_gopher", WantErr: true},
		{Desc: "leading hyphen", Handle: "-gopher", WantErr: true},
		{Desc: "leading dot", Handle: ".gopher", WantErr: true},
		{Desc: "whitespace", Handle: "go pher", WantErr: true},
		{Desc: "path traversal", Handle: "a/../b", WantErr: true},
		{Desc: "too long", Handle: strings.Repeat("a", 65), WantErr: true},
		{Desc: "at limit", Handle: strings.Repeat("a", 64), WantErr: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			err := service.ValidateHandle(tc.Handle)
			if tc.WantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
