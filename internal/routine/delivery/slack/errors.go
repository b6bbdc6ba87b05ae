package slack

// User-facing replies, kept in the team's working language.
const (
	msgNoTaskMatch = "я не понял, о какой задаче речь 🤔 Напиши название задачи и слово done."

	msgStaleSession = "Старое состояние — новое утро, нет активного треда."

	msgAlreadyCompleted = "Эта задача уже была отмечена ранее."

	msgProcessingFailed = "Что-то пошло не так, попробуй ещё раз."
)
