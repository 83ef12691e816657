package equiv

// Aliases holds the alias tables used during command canonicalization. Each
// table maps a shorthand to its canonical form. Tables are read-only for the
// lifetime of the Engine that holds them. Main command, verb, and resource
// lookups lowercase the key being matched; flag lookups are case sensitive
// because short flags distinguish case.
type Aliases struct {
	// MainCommand maps tool shorthands to the canonical tool name, e.g. "k" -> "kubectl".
	MainCommand map[string]string
	// Verbs maps verb shorthands to canonical verbs, e.g. "desc" -> "describe".
	Verbs map[string]string
	// Resources maps resource shorthands to canonical resource names, e.g. "po" -> "pods".
	Resources map[string]string
	// Flags maps short flag letters (without dashes) to long flag names
	// (without dashes), e.g. "n" -> "namespace".
	Flags map[string]string
}

// DefaultAliases returns the kubectl alias tables.
func DefaultAliases() Aliases {
	return Aliases{
		MainCommand: map[string]string{
			"k": "kubectl",
		},
		Verbs: map[string]string{
			"desc": "describe",
			"del":  "delete",
		},
		Resources: map[string]string{
			"po":                     "pods",
			"pod":                    "pods",
			"svc":                    "services",
			"service":                "services",
			"deploy":                 "deployments",
			"deployment":             "deployments",
			"rs":                     "replicasets",
			"replicaset":             "replicasets",
			"rc":                     "replicationcontrollers",
			"ds":                     "daemonsets",
			"daemonset":              "daemonsets",
			"sts":                    "statefulsets",
			"statefulset":            "statefulsets",
			"cm":                     "configmaps",
			"configmap":              "configmaps",
			"secret":                 "secrets",
			"ing":                    "ingresses",
			"ingress":                "ingresses",
			"ns":                     "namespaces",
			"namespace":              "namespaces",
			"no":                     "nodes",
			"node":                   "nodes",
			"pv":                     "persistentvolumes",
			"persistentvolume":       "persistentvolumes",
			"pvc":                    "persistentvolumeclaims",
			"persistentvolumeclaim":  "persistentvolumeclaims",
			"sa":                     "serviceaccounts",
			"serviceaccount":         "serviceaccounts",
			"job":                    "jobs",
			"cj":                     "cronjobs",
			"cronjob":                "cronjobs",
			"netpol":                 "networkpolicies",
			"networkpolicy":          "networkpolicies",
			"quota":                  "resourcequotas",
			"resourcequota":          "resourcequotas",
			"ep":                     "endpoints",
		},
		Flags: map[string]string{
			"n": "namespace",
			"f": "filename",
			"o": "output",
			"l": "selector",
			"c": "container",
			"A": "all-namespaces",
			"w": "watch",
			"h": "help",
		},
	}
}
