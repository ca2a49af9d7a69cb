package worker

import (
	"boss-brief-api/internal/domain/entity"
)

// EditorClass 編集者のクラス（ロール演出）
type EditorClass string

const (
	ClassCutter   EditorClass = "Cutter"
	ClassColorist EditorClass = "Colorist"
	ClassMotion   EditorClass = "Motion"
	ClassSound    EditorClass = "Sound"
)

var editorClasses = []EditorClass{ClassCutter, ClassColorist, ClassMotion, ClassSound}

// ClassIcons クラスごとのアイコン名
var ClassIcons = map[EditorClass]string{
	ClassCutter:   "scissors",
	ClassColorist: "palette",
	ClassMotion:   "zap",
	ClassSound:    "headphones",
}

// StatEntry 能力値 1 項目
type StatEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// SkillEntry スキル 1 件
type SkillEntry struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Color       string `json:"color"`
}

// BadgeEntry 実績バッジ
type BadgeEntry struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Glow  string `json:"glow"`
}

// EquipmentSlot 装備スロット
type EquipmentSlot struct {
	Slot   string `json:"slot"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Icon   string `json:"icon"`
}

// ActivityItem 直近のアクティビティ 1 件
type ActivityItem struct {
	Label   string `json:"label"`
	XPDelta int    `json:"xp_delta"`
	TimeAgo string `json:"time_ago"`
	Icon    string `json:"icon"`
}

// DerivedProfile 編集者 ID から決定的に導出されるプロフィール演出。
// DB には保存せず、同じ編集者には常に同じ内容を返す。
type DerivedProfile struct {
	Level       int             `json:"level"`
	XPProgress  int             `json:"xp_progress"`
	XPDelta     int             `json:"xp_delta"`
	EditorClass EditorClass     `json:"editor_class"`
	Stats       []StatEntry     `json:"stats"`
	Skills      []SkillEntry    `json:"skills"`
	Badges      []BadgeEntry    `json:"badges"`
	Equipment   []EquipmentSlot `json:"equipment"`
	ActivityLog []ActivityItem  `json:"activity_log"`
}

var statDefs = []StatEntry{
	{Key: "speed", Label: "Speed", Color: "emerald"},
	{Key: "quality", Label: "Quality", Color: "blue"},
	{Key: "consistency", Label: "Consistency", Color: "purple"},
	{Key: "communication", Label: "Communication", Color: "cyan"},
	{Key: "reliability", Label: "Reliability", Color: "amber"},
	{Key: "taste", Label: "Taste", Color: "rose"},
}

var badgePool = []BadgeEntry{
	{Label: "Fast Turnaround", Icon: "bolt", Color: "text-amber-400 bg-amber-500/10 border-amber-500/20", Glow: "shadow-amber-500/20"},
	{Label: "Ads Specialist", Icon: "target", Color: "text-blue-400 bg-blue-500/10 border-blue-500/20", Glow: "shadow-blue-500/20"},
	{Label: "Luxury Tone", Icon: "gem", Color: "text-purple-400 bg-purple-500/10 border-purple-500/20", Glow: "shadow-purple-500/20"},
	{Label: "Hook Master", Icon: "magnet", Color: "text-rose-400 bg-rose-500/10 border-rose-500/20", Glow: "shadow-rose-500/20"},
	{Label: "Beat Sync Pro", Icon: "music", Color: "text-cyan-400 bg-cyan-500/10 border-cyan-500/20", Glow: "shadow-cyan-500/20"},
	{Label: "Color Grading", Icon: "paintbrush", Color: "text-orange-400 bg-orange-500/10 border-orange-500/20", Glow: "shadow-orange-500/20"},
	{Label: "Viral Creator", Icon: "flame", Color: "text-red-400 bg-red-500/10 border-red-500/20", Glow: "shadow-red-500/20"},
	{Label: "Caption King", Icon: "type", Color: "text-emerald-400 bg-emerald-500/10 border-emerald-500/20", Glow: "shadow-emerald-500/20"},
}

var equipmentPool = []EquipmentSlot{
	{Slot: "Main Tool", Name: "Premiere Pro", Icon: "film"},
	{Slot: "Sub Tool", Name: "After Effects", Icon: "layers"},
	{Slot: "Audio", Name: "Logic Pro", Icon: "headphones"},
	{Slot: "Plugin", Name: "Magic Bullet", Icon: "sparkles"},
	{Slot: "Main Tool", Name: "DaVinci Resolve", Icon: "film"},
	{Slot: "Sub Tool", Name: "CapCut Pro", Icon: "smartphone"},
	{Slot: "Audio", Name: "Audition", Icon: "headphones"},
	{Slot: "Plugin", Name: "Red Giant", Icon: "sparkles"},
}

var rarities = []string{"common", "rare", "epic", "legendary"}

var activityPool = []ActivityItem{
	{Label: "Job 納品完了", Icon: "check-circle"},
	{Label: "クライアント高評価", Icon: "star"},
	{Label: "スキル認定テスト合格", Icon: "award"},
	{Label: "連続3日ログイン", Icon: "calendar"},
	{Label: "初回 Job 完了", Icon: "flag"},
	{Label: "リピートクライアント獲得", Icon: "repeat"},
	{Label: "AI品質スコア 90+", Icon: "trending-up"},
	{Label: "素材アップロード完了", Icon: "upload"},
}

var timeAgoOptions = []string{
	"2分前", "15分前", "1時間前", "3時間前", "昨日", "2日前", "3日前", "1週間前",
}

var skillColors = []string{"emerald", "blue", "purple", "amber", "cyan", "rose"}

// DeriveProfile 編集者 ID をシードにプロフィールを導出する。
// 乱数の消費順は固定。途中に呼び出しを足し引きすると既存編集者の
// プロフィールが全員分変わるので注意。
func DeriveProfile(w *entity.Worker) DerivedProfile {
	rng := newSeededRand(w.ID)

	level := rng.intn(5, 42)
	xpProgress := rng.intn(10, 95)
	xpDelta := rng.intn(15, 80)

	editorClass := editorClasses[rng.index(len(editorClasses))]

	stats := make([]StatEntry, len(statDefs))
	for i, s := range statDefs {
		s.Value = rng.intn(40, 95)
		stats[i] = s
	}

	// スキル名は登録済み capability から。未登録なら既定セット。
	var skillNames []string
	if c := w.PrimaryCapability(); c != nil {
		skillNames = append(skillNames, c.Platforms...)
		skillNames = append(skillNames, c.Tools...)
		skillNames = append(skillNames, c.Strengths...)
	}
	if len(skillNames) == 0 {
		skillNames = []string{"Editing", "Color", "Transitions", "Pacing"}
	}
	skills := make([]SkillEntry, len(skillNames))
	for i, name := range skillNames {
		skills[i] = SkillEntry{
			Name:        name,
			Proficiency: rng.intn(30, 98),
			Color:       skillColors[rng.index(len(skillColors))],
		}
	}

	badgeCount := rng.intn(3, 5)
	badges := shuffleSeeded(rng, badgePool)[:badgeCount]

	// 装備はスロット重複なしで 4 枠
	var equipment []EquipmentSlot
	seenSlots := map[string]bool{}
	for _, eq := range shuffleSeeded(rng, equipmentPool) {
		if seenSlots[eq.Slot] {
			continue
		}
		seenSlots[eq.Slot] = true
		eq.Rarity = rarities[rng.index(len(rarities))]
		equipment = append(equipment, eq)
		if len(equipment) >= 4 {
			break
		}
	}

	shuffledActivity := shuffleSeeded(rng, activityPool)
	activityLog := make([]ActivityItem, 0, 5)
	for i, a := range shuffledActivity[:5] {
		a.XPDelta = rng.intn(10, 60)
		a.TimeAgo = timeAgoOptions[min(i, len(timeAgoOptions)-1)]
		activityLog = append(activityLog, a)
	}

	return DerivedProfile{
		Level:       level,
		XPProgress:  xpProgress,
		XPDelta:     xpDelta,
		EditorClass: editorClass,
		Stats:       stats,
		Skills:      skills,
		Badges:      badges,
		Equipment:   equipment,
		ActivityLog: activityLog,
	}
}
