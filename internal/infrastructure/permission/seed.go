package permission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"accountsforge/internal/shared/logger"
)

type policySeed struct {
	Policies []policyRule `yaml:"policies"`
}

type policyRule struct {
	Role     string   `yaml:"role"`
	Resource string   `yaml:"resource"`
	Actions  []string `yaml:"actions"`
}

// SeedFromFile loads the policy seed file and inserts any rule not already
// present. Existing rules are never removed, so operator edits survive
// restarts.
func (e *Enforcer) SeedFromFile(path string, log logger.Interface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read policy seed file: %w", err)
	}

	var seed policySeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse policy seed file: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, rule := range seed.Policies {
		for _, action := range rule.Actions {
			ok, err := e.enforcer.AddPolicy(rule.Role, rule.Resource, action)
			if err != nil {
				return fmt.Errorf("failed to seed policy %s/%s/%s: %w", rule.Role, rule.Resource, action, err)
			}
			if ok {
				added++
			}
		}
	}

	if added > 0 {
		if err := e.enforcer.SavePolicy(); err != nil {
			return fmt.Errorf("failed to save seeded policies: %w", err)
		}
	}

	log.Infow("policy seed applied", "path", path, "rules_added", added)
	return nil
}
