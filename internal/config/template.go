package config

const configTemplate = `# lapse configuration file

# Cadence at which the clock engine advances elapsed time.
# Minimum 1ms; the display resolves hundredths, so 10ms is plenty.
tick_interval: 10ms

# Cadence at which the terminal redraws the running clock.
# Independent of tick_interval: the engine keeps time, the view samples it.
refresh_interval: 50ms

# Observability settings
log_level: info  # debug, info, warn, error
`
