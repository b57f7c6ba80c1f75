package domain

// StartScenario is the conventional name of the initial scenario.
const StartScenario = "start"
