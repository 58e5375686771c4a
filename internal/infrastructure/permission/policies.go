package permission

import (
	"fmt"

	"art/internal/shared/constants"
	"art/internal/shared/logger"
)

// Resources and actions checked by the HTTP layer.
const (
	ResourceAsset        = "asset"
	ResourceCatalog      = "catalog"
	ResourceOrganization = "organization"
	ResourceSpecs        = "specs"

	ActionRead     = "read"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionAllocate = "allocate"
	ActionStatus   = "record_status"
	ActionReport   = "report_incident"
	ActionInspect  = "add_condition"
	ActionExport   = "export"
)

// DefaultPolicies lets users read everything and file incident and condition
// reports; admins manage the rest.
func DefaultPolicies() [][]string {
	user, admin := constants.RoleUser, constants.RoleAdmin
	return [][]string{
		{user, ResourceAsset, ActionRead},
		{user, ResourceAsset, ActionReport},
		{user, ResourceAsset, ActionInspect},
		{user, ResourceCatalog, ActionRead},
		{user, ResourceOrganization, ActionRead},
		{user, ResourceSpecs, ActionRead},

		{admin, ResourceAsset, ActionCreate},
		{admin, ResourceAsset, ActionUpdate},
		{admin, ResourceAsset, ActionDelete},
		{admin, ResourceAsset, ActionAllocate},
		{admin, ResourceAsset, ActionStatus},
		{admin, ResourceAsset, ActionExport},
		{admin, ResourceCatalog, ActionCreate},
		{admin, ResourceCatalog, ActionUpdate},
		{admin, ResourceCatalog, ActionDelete},
		{admin, ResourceOrganization, ActionCreate},
		{admin, ResourceOrganization, ActionUpdate},
		{admin, ResourceOrganization, ActionDelete},
		{admin, ResourceSpecs, ActionCreate},
		{admin, ResourceSpecs, ActionDelete},
	}
}

// SeedPolicies installs the default policies plus any extra ones. Existing
// policies are left alone, so it is safe to run on every start.
func SeedPolicies(e *Enforcer, extra [][]string, log logger.Interface) error {
	if err := e.AddRoleInheritance(constants.RoleAdmin, constants.RoleUser); err != nil {
		return err
	}

	policies := append(DefaultPolicies(), extra...)
	for _, policy := range policies {
		if len(policy) != 3 {
			return fmt.Errorf("policy %v must have role, resource and action", policy)
		}
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("permission policies seeded", "count", len(policies))
	return nil
}

// SeedPolicies is SeedPolicies bound to e.
func (e *Enforcer) SeedPolicies(extra [][]string) error {
	return SeedPolicies(e, extra, e.logger)
}
