// Package repository データアクセス層のインターフェースを定義する
package repository

import "context"

// KVStore 通用键值存储接口。会話ブロブとセッションはこの口だけを通す。
//
// Load は「キーなし」と「JSON 壊れ」をどちらも (nil, false) で返す：
// 壊れた永続状態は存在しないものとして扱い、呼び出し側は新規開始にフォール
// バックする。エラーを返さないのは意図的な契約。
type KVStore interface {
	// Load キーに対応する JSON ドキュメントの原文を返す。不在や解釈不能は (nil, false)
	Load(ctx context.Context, key string) ([]byte, bool)

	// Save 値を JSON にして上書き保存する
	Save(ctx context.Context, key string, value any) error

	// Remove キーを削除する
	Remove(ctx context.Context, key string) error
}
