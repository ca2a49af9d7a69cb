// Package worker 編集者のアプリケーションサービスと派生プロフィール生成
package worker

import "unicode/utf16"

// mulberry32 シード付き PRNG。同じシードからは常に同じ系列を返す。
// プロフィールが編集者 ID ごとに安定するよう、生成手順は固定であり
// 変更するとキャッシュ済みプロフィールと食い違う。
func mulberry32(seed uint32) func() float64 {
	s := seed
	return func() float64 {
		s += 0x6d2b79f5
		t := (s ^ (s >> 15)) * (s | 1)
		t = (t + (t^(t>>7))*(t|61)) ^ t
		return float64(t^(t>>14)) / 4294967296
	}
}

// hashString 文字列から 32bit シードを作る（UTF-16 コード単位ベース）
func hashString(str string) uint32 {
	var hash int32
	for _, c := range utf16.Encode([]rune(str)) {
		hash = hash<<5 - hash + int32(c)
	}
	return uint32(hash)
}

// seededRand 派生プロフィール用の乱数ヘルパー
type seededRand struct {
	next func() float64
}

func newSeededRand(seed string) *seededRand {
	return &seededRand{next: mulberry32(hashString(seed))}
}

// intn [min, max] の一様整数
func (r *seededRand) intn(min, max int) int {
	return int(r.next()*float64(max-min+1)) + min
}

// index [0, n) の一様な添字
func (r *seededRand) index(n int) int {
	return int(r.next() * float64(n))
}

// shuffle Fisher-Yates。引数は書き換えず複製を返す。
func shuffleSeeded[T any](r *seededRand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := r.index(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
