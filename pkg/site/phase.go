package site

import "fmt"

// Phase identifies a step of a site build. Phases run in ascending order.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePrePrepareSiteBuild
	PhasePrepareSiteBuild
	PhasePostPrepareSiteBuild
	PhasePrePreparePageBuild
	PhasePreparePageBuild
	PhasePostPreparePageBuild
	PhasePreBuildPages
	PhaseBuildPages
	PhasePostBuildPages
	PhasePrePreparePageExpansion
	PhasePreparePageExpansion
	PhasePostPreparePageExpansion
	PhasePreExpandPages
	PhaseExpandPages
	PhasePostExpandPages
	PhasePreRenderPages
	PhaseRenderPages
	PhasePostRenderPages
	PhasePreExportPages
	PhaseExportPages
	PhasePostExportPages
	PhasePreFinalizePageBuild
	PhaseFinalizePageBuild
	PhasePostFinalizePageBuild
	PhasePreFinalizeSiteBuild
	PhaseFinalizeSiteBuild
	PhasePostFinalizeSiteBuild
)

var phaseNames = [...]string{
	PhaseInit:                     "init",
	PhasePrePrepareSiteBuild:      "pre_prepare_site_build",
	PhasePrepareSiteBuild:         "prepare_site_build",
	PhasePostPrepareSiteBuild:     "post_prepare_site_build",
	PhasePrePreparePageBuild:      "pre_prepare_page_build",
	PhasePreparePageBuild:         "prepare_page_build",
	PhasePostPreparePageBuild:     "post_prepare_page_build",
	PhasePreBuildPages:            "pre_build_pages",
	PhaseBuildPages:               "build_pages",
	PhasePostBuildPages:           "post_build_pages",
	PhasePrePreparePageExpansion:  "pre_prepare_page_expansion",
	PhasePreparePageExpansion:     "prepare_page_expansion",
	PhasePostPreparePageExpansion: "post_prepare_page_expansion",
	PhasePreExpandPages:           "pre_expand_pages",
	PhaseExpandPages:              "expand_pages",
	PhasePostExpandPages:          "post_expand_pages",
	PhasePreRenderPages:           "pre_render_pages",
	PhaseRenderPages:              "render_pages",
	PhasePostRenderPages:          "post_render_pages",
	PhasePreExportPages:           "pre_export_pages",
	PhaseExportPages:              "export_pages",
	PhasePostExportPages:          "post_export_pages",
	PhasePreFinalizePageBuild:     "pre_finalize_page_build",
	PhaseFinalizePageBuild:        "finalize_page_build",
	PhasePostFinalizePageBuild:    "post_finalize_page_build",
	PhasePreFinalizeSiteBuild:     "pre_finalize_site_build",
	PhaseFinalizeSiteBuild:        "finalize_site_build",
	PhasePostFinalizeSiteBuild:    "post_finalize_site_build",
}

// String returns the snake_case phase name.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// pageStages maps processor stage names accepted by a page group to the
// phase they run in.
var pageStages = map[string]Phase{
	"pre_prepare_page_build":      PhasePrePreparePageBuild,
	"post_prepare_page_build":     PhasePostPreparePageBuild,
	"pre_build_pages":             PhasePreBuildPages,
	"post_build_pages":            PhasePostBuildPages,
	"pre_prepare_page_expansion":  PhasePrePreparePageExpansion,
	"post_prepare_page_expansion": PhasePostPreparePageExpansion,
	"pre_expand_pages":            PhasePreExpandPages,
	"post_expand_pages":           PhasePostExpandPages,
	"pre_render_pages":            PhasePreRenderPages,
	"post_render_pages":           PhasePostRenderPages,
	"pre_export_pages":            PhasePreExportPages,
	"post_export_pages":           PhasePostExportPages,
	"pre_finalize_page_build":     PhasePreFinalizePageBuild,
	"post_finalize_page_build":    PhasePostFinalizePageBuild,
}

// siteStages maps processor stage names that only a site accepts.
var siteStages = map[string]Phase{
	"pre_prepare_site":   PhasePrePrepareSiteBuild,
	"post_prepare_site":  PhasePostPrepareSiteBuild,
	"pre_finalize_site":  PhasePreFinalizeSiteBuild,
	"post_finalize_site": PhasePostFinalizeSiteBuild,
}

// StagePhase returns the phase a processor stage name runs in.
func StagePhase(stage string) (Phase, error) {
	if p, ok := pageStages[stage]; ok {
		return p, nil
	}
	if p, ok := siteStages[stage]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
}
