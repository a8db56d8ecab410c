package scaffold

import (
	"sort"

	"github.com/helixkit/helix/internal/settings"
)

// Token keys available to template content.
const (
	KeyLayerPrefixedProjectName = "layerprefixedprojectname"
	KeyProjectName              = "projectname"
	KeyVendorPrefix             = "vendorprefix"
	KeyProjectGUID              = "projectguid"
	KeyLayer                    = "layer"
	KeyLowercasedLayer          = "lowercasedlayer"
	KeyTarget                   = "target"
	KeyModuleGroup              = "modulegroup"
)

// Tokens maps template keys to the values of one run.
type Tokens map[string]string

// NewTokens resolves every key from s. Optional values resolve to "".
func NewTokens(s settings.Settings) Tokens {
	return Tokens{
		KeyLayerPrefixedProjectName: s.LayerPrefixedProjectName(),
		KeyProjectName:              s.ProjectName(),
		KeyVendorPrefix:             s.VendorPrefix(),
		KeyProjectGUID:              s.ProjectGUID(),
		KeyLayer:                    s.Layer().String(),
		KeyLowercasedLayer:          s.Layer().Lower(),
		KeyTarget:                   s.TargetFrameworkVersion(),
		KeyModuleGroup:              s.ModuleGroup(),
	}
}

// Keys returns the token keys in sorted order.
func (t Tokens) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
