package workflow

import (
	"fmt"
	"strings"
)

// Backend records historically arrived with role/status fields under many
// different names. Normalize folds every known alias into one canonical
// Record at the boundary so Resolve stays pure.

var currentRoleAliases = []string{"current_role", "currentRole", "role", "current_step", "current_unit", "واحد جاری"}
var assignedRoleAliases = []string{"assigned_role", "assignedRole", "assignee_role", "assigned_to", "مسئول"}
var unitAliases = []string{"workflow_unit", "unit", "department", "واحد"}
var statusAliases = []string{"status", "state", "وضعیت"}
var statusTextAliases = []string{"status_text", "status_label", "عنوان وضعیت"}
var scopeAliases = []string{"scope", "budget_scope", "category", "دسته"}
var historyAliases = []string{"history", "actions", "action_history", "logs"}

var actionTypeAliases = []string{"type", "action", "kind"}
var actionToAliases = []string{"to", "to_role", "target_role", "next_role"}
var actionFromAliases = []string{"from", "from_role", "prev_role"}
var actionNoteAliases = []string{"note", "comment", "description"}

var statusValues = map[string]Status{
	"pending":  StatusPending,
	"approved": StatusApproved,
	"rejected": StatusRejected,
	"در انتظار": StatusPending,
	"تایید شده": StatusApproved,
	"تأیید شده": StatusApproved,
	"رد شده":    StatusRejected,
}

// Normalize maps a loosely-keyed record (decoded JSON object) into the
// canonical Record shape. Unknown scopes are an error; everything else
// degrades to empty fields the resolver can fall through.
func Normalize(raw map[string]interface{}) (Record, error) {
	scope := Scope(strings.ToLower(pickString(raw, scopeAliases)))
	if !scope.IsValid() {
		return Record{}, fmt.Errorf("unknown scope %q", scope)
	}

	rec := Record{
		Scope:        scope,
		Status:       normalizeStatus(pickString(raw, statusAliases)),
		CurrentRole:  pickString(raw, currentRoleAliases),
		AssignedRole: pickString(raw, assignedRoleAliases),
		Unit:         pickString(raw, unitAliases),
		StatusText:   pickString(raw, statusTextAliases),
	}

	for _, alias := range historyAliases {
		list, ok := raw[alias].([]interface{})
		if !ok {
			continue
		}
		for _, item := range list {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			rec.History = append(rec.History, Action{
				Type: strings.ToLower(pickString(entry, actionTypeAliases)),
				To:   pickString(entry, actionToAliases),
				From: pickString(entry, actionFromAliases),
				Note: pickString(entry, actionNoteAliases),
			})
		}
		break
	}

	return rec, nil
}

func normalizeStatus(v string) Status {
	if s, ok := statusValues[strings.ToLower(strings.TrimSpace(v))]; ok {
		return s
	}
	return StatusPending
}

func pickString(m map[string]interface{}, aliases []string) string {
	for _, key := range aliases {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
