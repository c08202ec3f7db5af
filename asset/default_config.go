package asset

// DefaultConfig is the configuration written when none exists
const DefaultConfig = `# tlock configuration

[general]
# Print a goodbye line after leaving with CTRL-C
polite = false
# Frames per second; higher values make gradients scroll faster
fps = 30
# Ring a short chime when a countdown or timer reaches zero
alarm = true

[format]
# strftime(3) formats
time = "%H:%M:%S"
date = "%d/%m/%Y"

[styling]
# One of: term, hex, ansi, gradient
color_mode = "term"

# Terminal palette index, 0-15
color_term = 7

# RGB hex color, "#rrggbb" or "#rgb"
color_hex = "#ffffff"

# 256-color palette index, 0-255
color_ansi = 255

# Gradient key colors, interpolated in order
gradient = ["#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff"]
# Number of interpolated colors across the whole gradient
gradient_steps = 200
# Run the gradient back to its first color instead of jumping
gradient_loop = true
`
