package i18n

// french maps English message formats to their French translation.
var french = map[string]string{
	// init
	"Package name":                      "Nom du package",
	"Description":                       "Description",
	"Author":                            "Auteur",
	"Main file":                         "Fichier principal",
	"Global commands (comma-separated)": "Commandes globales (séparées par des virgules)",
	"Created %s.":                       "%s a été créé.",
	"Could not open %s.":                "Impossible d'ouvrir %s.",
	"Cancelled.":                        "Annulé.",

	// descriptor
	"No %s found in this directory. Run \"%s init\" first.": "Aucun fichier %s dans ce dossier. Lancez d'abord \"%s init\".",
	"%s could not be read: %v":                              "Impossible de lire %s : %v",
	"%s is empty. Run \"%s init\" first.":                   "%s est vide. Lancez d'abord \"%s init\".",
	"%s is valid.":                                          "%s est valide.",
	"%s has %d problem(s):":                                 "%s contient %d problème(s) :",
	"/globalCommands: %s is reserved (%s)":                  "/globalCommands : %s est réservée (%s)",

	// install / uninstall
	"Install every module listed in %s?":                   "Installer tous les modules listés dans %s ?",
	"Uninstall every module listed in %s?":                 "Désinstaller tous les modules listés dans %s ?",
	"Installed %s.":                                        "Module %s installé.",
	"Uninstalled %s.":                                      "Module %s désinstallé.",
	"Installing %s...":                                     "Installation de %s...",
	"Installed %d dependencies.":                           "%d dépendances installées.",
	"Installed the modules listed in %s.":                  "Les modules listés dans %s ont été installés.",
	"Uninstalled the modules listed in %s.":                "Les modules listés dans %s ont été désinstallés.",
	"Could not install %s.":                                "Impossible d'installer %s.",
	"Could not uninstall %s.":                              "Impossible de désinstaller %s.",
	"Could not install the modules listed in %s.":          "Impossible d'installer les modules listés dans %s.",
	"Could not uninstall the modules listed in %s.":        "Impossible de désinstaller les modules listés dans %s.",
	"No dependencies to install.":                          "Aucune dépendance à installer.",
	"%q is not a module name.":                             "%q n'est pas un nom de module.",
	"Module %s is not installed.":                          "Le module %s n'est pas installé.",
	"Could not list the installed modules.":                "Impossible de lister les modules installés.",
	"Give exactly one GitHub repository, e.g. owner/repo.": "Indiquez un seul dépôt GitHub, par exemple owner/repo.",
	"%q is not a GitHub repository, expected owner/repo.":  "%q n'est pas un dépôt GitHub, format attendu : owner/repo.",
	"Repository %s was not found on GitHub.":               "Le dépôt %s est introuvable sur GitHub.",
	"%s has no %s and cannot be installed with %s.":        "%s ne contient pas de %s et ne peut pas être installé avec %s.",
	"See %s":                                               "Voir %s",
	"%s already exists in this directory.":                 "%s existe déjà dans ce dossier.",
	"Could not clone %s.":                                  "Impossible de cloner %s.",
	"Cloned %s into %s.":                                   "%s a été cloné dans %s.",
	"%s in %s could not be read, nothing else to do.":      "Impossible de lire %s dans %s, rien d'autre à faire.",
	"Python is required, install it or set %s":             "Python est requis, installez-le ou définissez %s",

	// link / unlink
	"No global commands are defined in %s.":                       "Aucune commande globale n'a été définie dans %s.",
	"No main file is defined in %s.":                              "Le fichier principal n'a pas été défini dans %s.",
	"The main file %s does not exist.":                            "Le fichier principal %s n'existe pas.",
	"The command %s may only contain letters, digits and dashes.": "La commande %s contient des caractères non alphanumériques.",
	"The command %s is reserved (%s).":                            "La commande %s est réservée (%s).",
	"The command %s already exists. Replace it?":                  "La commande %s existe déjà. La remplacer ?",
	"Skipping %s.":                                                "%s est ignorée.",
	"Nothing to link.":                                            "Aucune commande à lier.",
	"Link %s to %s?":                                              "Lier %s à %s ?",
	"Linked %s.":                                                  "Commande %s liée.",
	"Open a new terminal if the commands are not found yet.":      "Ouvrez un nouveau terminal si les commandes ne sont pas encore trouvées.",
	"Unlink %s?":                                                  "Supprimer %s ?",
	"Unlinked commands:":                                          "Commandes supprimées :",
	"removed":                                                     "supprimée",
	"not linked":                                                  "introuvable",
	"kept, not created by %s":                                     "conservée, non créée par %s",
	"Removed %s from %s.":                                         "%s retiré de %s.",
	"Could not update %s: %v":                                     "Impossible de mettre à jour %s : %v",

	// build
	"The package has no name, set one in %s.":     "Le package n'a pas de nom, définissez-en un dans %s.",
	"GitHub repository (owner/repo)":              "Dépôt GitHub (owner/repo)",
	"Give the repository with --repo owner/repo.": "Indiquez le dépôt avec --repo owner/repo.",
	"%s has no %s, push it before building.":      "%s ne contient pas de %s, publiez-le avant de construire.",
	"Wrote %s.":                                   "%s a été écrit.",

	// doctor
	"Checking your environment:":                                       "Vérification de votre environnement :",
	"Everything needed is installed.":                                  "Tout ce qui est nécessaire est installé.",
	"Some tools are missing, install them and run this command again.": "Certains outils manquent, installez-les puis relancez cette commande.",
	"Commands directory":                                               "Dossier des commandes",
	"Python 2 is no longer supported, install Python 3":                "Python 2 n'est plus supporté, installez Python 3",
	"global commands cannot be linked until this directory exists":     "les commandes globales ne peuvent pas être liées tant que ce dossier n'existe pas",
	"created":                                                          "créé",
	"could not add to PATH":                                            "impossible de l'ajouter au PATH",
	"added to PATH, restart your terminal":                             "ajouté au PATH, redémarrez votre terminal",
	"not on PATH":                                                      "absent du PATH",
}
