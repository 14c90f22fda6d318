package modkit

import "interviewcoach/internal/modkit/module"

// Module is re-exported so constructors can return modkit.Module
type Module = module.Module
