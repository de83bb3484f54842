package installer

import (
	"fmt"
	"os"
	"terminalist/internal/logger"
)

// Remove deletes the interception for tool. Only a symlink that resolves to SelfPath
// is removed; anything else is left alone and ErrNotInterception is returned.
func (i *Interceptor) Remove(tool string) error {
	link := i.Path(tool)

	if !i.IsInterception(link) {
		logger.Debug("[DEBUG] Remove: %s does not point at %s\n", link, i.SelfPath)
		return fmt.Errorf("%s: %w", tool, ErrNotInterception)
	}

	if err := os.Remove(link); err != nil {
		return fmt.Errorf("failed to remove interception %s: %w", link, err)
	}

	logger.Debug("[DEBUG] Remove: deleted %s\n", link)
	return nil
}
