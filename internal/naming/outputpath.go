package naming

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/sheetmaster/internal/config"
)

// contactSuffix is appended to the video base name for derived sheet paths.
const contactSuffix = "_contact"

// OutputPath returns the sheet path for a video. An explicit output wins;
// otherwise the sheet is placed next to the video as
// <basename>_contact.<ext>.
func OutputPath(videoPath, explicitOutput string, format config.SheetFormat) string {
	if explicitOutput != "" {
		return explicitOutput
	}

	dir := filepath.Dir(videoPath)
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+contactSuffix+"."+format.Ext())
}
