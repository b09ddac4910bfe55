package bot

import "regexp"

// Валидаторы текстовых состояний. Каждое текстовое состояние принимает ровно
// один формат ввода; не прошедшее проверку сообщение удаляется из чата,
// состояние сессии при этом не меняется.
var (
	nameRe    = regexp.MustCompile(`^.{2,64}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{9}$`)
	addressRe = regexp.MustCompile(`^.{2,128}$`)
	countRe   = regexp.MustCompile(`^[0-9]{1,9}$`)
)
