package ui

import "taskdeck/internal/store"

// Labels cover the dashboard and the short status messages, in English
// and Japanese.
var labels = map[string]map[string]string{
	store.LangEnglish: {
		"total":       "total",
		"pending":     "pending",
		"in_progress": "in progress",
		"completed":   "completed",
		"overdue":     "overdue",
		"due_today":   "due today",
		"no_tasks":    "No tasks yet. Press 'a' to add one.",
		"added":       "Added task",
		"saved":       "Saved",
		"deleted":     "Deleted task",
		"duplicated":  "Duplicated",
		"reordered":   "Moved",
		"cancelled":   "Cancelled",
		"search":      "Search",
	},
	store.LangJapanese: {
		"total":       "全件",
		"pending":     "未着手",
		"in_progress": "進行中",
		"completed":   "完了",
		"overdue":     "期限切れ",
		"due_today":   "今日まで",
		"no_tasks":    "タスクがありません。'a' で追加できます。",
		"added":       "タスクを追加しました",
		"saved":       "保存しました",
		"deleted":     "タスクを削除しました",
		"duplicated":  "複製しました",
		"reordered":   "移動しました",
		"cancelled":   "キャンセルしました",
		"search":      "検索",
	},
}

func tr(lang, key string) string {
	if m, ok := labels[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := labels[store.LangEnglish][key]; ok {
		return v
	}
	return key
}
