package tui

const helpText = `sumitore generates a reading passage, you summarize it, and an external evaluator scores your summary. Passing evaluations build your streak and earn badges.

Menu
  j/k or arrows  select passage length
  enter          start training
  r              report
  h              help
  q              quit

Training
  i or enter     edit your summary
  Ctrl+S         submit for evaluation (while editing)
  Esc            stop editing / back to menu
  e              toggle the verdict overlay
  n              next passage (from the verdict overlay)
  j/k            scroll the passage or overlay

Only evaluations with a determinate overall result are recorded. A failed or timed-out call records nothing; just submit again.

Badges
  🔥  consecutive passes (every 5, up to 50)
  ⭐  cumulative passes (every 5, up to 100)

Streak and badges are derived from the stored history every time the app starts, so they always match the log.`

func (m *Model) openHelp(from viewMode) {
	m.returnMode = from
	m.mode = modeHelp
	m.helpScroll = 0
	m.status = "Help. Press 'h' to close."
}
