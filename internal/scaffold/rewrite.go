package scaffold

import (
	"strings"

	"github.com/helixkit/helix/internal/settings"
)

// Name tokens rewritten in template file and directory names.
const (
	TokenLayer  = "_Layer"
	TokenModule = "_Module"
	TokenVendor = "_Vendor"
)

// Whole-name directory placeholders of the solution-specific tree.
const (
	SegmentLayer        = "Layer"
	SegmentProjectName  = "ProjectName"
	SegmentVendorPrefix = "VendorPrefix"
)

// NameRewriteStrategy turns template entry names into destination names.
type NameRewriteStrategy interface {
	RewriteDir(name string) string
	RewriteFile(name string) string
}

// TokenRewriter replaces _Layer, _Module and _Vendor inside names. Only the
// first occurrence of each token is replaced unless ReplaceAll is set.
type TokenRewriter struct {
	Layer      string
	Module     string
	Vendor     string
	ReplaceAll bool
}

// NewTokenRewriter returns the token rewriter for s.
func NewTokenRewriter(s settings.Settings, replaceAll bool) TokenRewriter {
	return TokenRewriter{
		Layer:      s.Layer().String(),
		Module:     s.ProjectName(),
		Vendor:     s.VendorPrefix(),
		ReplaceAll: replaceAll,
	}
}

// RewriteDir rewrites a directory name.
func (r TokenRewriter) RewriteDir(name string) string {
	return r.rewrite(name)
}

// RewriteFile rewrites a file name.
func (r TokenRewriter) RewriteFile(name string) string {
	return r.rewrite(name)
}

func (r TokenRewriter) rewrite(name string) string {
	n := 1
	if r.ReplaceAll {
		n = -1
	}
	name = strings.Replace(name, TokenLayer, r.Layer, n)
	name = strings.Replace(name, TokenModule, r.Module, n)
	name = strings.Replace(name, TokenVendor, r.Vendor, n)
	return name
}

// SegmentRewriter replaces directories named exactly Layer, ProjectName or
// VendorPrefix with the corresponding value. Other names are handled by the
// embedded TokenRewriter.
type SegmentRewriter struct {
	TokenRewriter
}

// NewSegmentRewriter returns the segment rewriter for s.
func NewSegmentRewriter(s settings.Settings, replaceAll bool) SegmentRewriter {
	return SegmentRewriter{TokenRewriter: NewTokenRewriter(s, replaceAll)}
}

// RewriteDir rewrites a directory name.
func (r SegmentRewriter) RewriteDir(name string) string {
	switch name {
	case SegmentLayer:
		return r.Layer
	case SegmentProjectName:
		return r.Module
	case SegmentVendorPrefix:
		return r.Vendor
	default:
		return r.TokenRewriter.RewriteDir(name)
	}
}

// Rewrite applies first-occurrence token replacement to name.
func Rewrite(name string, s settings.Settings) string {
	return NewTokenRewriter(s, false).RewriteFile(name)
}
