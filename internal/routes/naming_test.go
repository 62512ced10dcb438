package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"about.tsx", "About"},
		{"user-profile.tsx", "UserProfile"},
		{"user_profile.tsx", "UserProfile"},
		{"user-profile-settings.tsx", "UserProfileSettings"},
		{"[id].tsx", "Id"},
		{"[userId].tsx", "UserId"},
		{"blog", "Blog"},
		{"2fa.tsx", "P2fa"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pascalCase(tt.name), "pascalCase(%q)", tt.name)
	}
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		isFile bool
		want   string
	}{
		{"about.tsx", true, "about"},
		{"About.tsx", true, "about"},
		{"[id].tsx", true, ":id"},
		{"[userId].tsx", true, ":userid"},
		{"404.tsx", true, "*"},
		{"users", false, "users"},
		{"[slug]", false, ":slug"},
		{"404", false, "*"},
		{"User-Settings", false, "user-settings"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, segment(tt.name, tt.isFile), "segment(%q, %v)", tt.name, tt.isFile)
	}
}

func TestTypeSegment(t *testing.T) {
	tests := []struct {
		name   string
		isFile bool
		want   string
	}{
		{"about.tsx", true, "about"},
		{"[id].tsx", true, "${string}"},
		{"[slug]", false, "${string}"},
		{"users", false, "users"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, typeSegment(tt.name, tt.isFile), "typeSegment(%q, %v)", tt.name, tt.isFile)
	}
}

func TestReservedNames(t *testing.T) {
	assert.True(t, isIndex("index.tsx"))
	assert.True(t, isIndex("Index.jsx"))
	assert.False(t, isIndex("indexes.tsx"))

	assert.True(t, isLayout("layout.tsx"))
	assert.True(t, isLayout("LAYOUT.ts"))
	assert.False(t, isLayout("layouts.tsx"))

	assert.True(t, isLoading("loading.tsx"))
	assert.True(t, isNotFound("404.tsx"))
	assert.False(t, isNotFound("4040.tsx"))
}

func TestIndexIdent(t *testing.T) {
	assert.Equal(t, "Index", indexIdent(""))
	assert.Equal(t, "AdminIndex", indexIdent("admin"))
	assert.Equal(t, "AdminUsersIndex", indexIdent("admin/users"))
}

func TestDirIdent(t *testing.T) {
	assert.Equal(t, RootIdent, dirIdent(""))
	assert.Equal(t, "Users", dirIdent("admin/users"))
	assert.Equal(t, "UserSettings", dirIdent("admin/user-settings"))
}

func TestAncestorPrefixes(t *testing.T) {
	assert.Nil(t, ancestorPrefixes(""))
	assert.Equal(t, []string{"Admin"}, ancestorPrefixes("admin"))
	assert.Equal(t, []string{"B", "AB"}, ancestorPrefixes("a/b"))
}
